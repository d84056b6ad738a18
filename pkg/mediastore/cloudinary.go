package mediastore

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"safarsaga-backend/pkg/utils"

	"go.uber.org/zap"
)

// Client uploads gallery images to Cloudinary through its signed upload REST
// endpoint. Gallery media lives entirely outside the booking core.
type Client struct {
	config utils.CloudinaryConfig
	http   *http.Client
	log    *zap.Logger
}

type UploadResult struct {
	URL      string
	PublicID string
}

func NewClient(config utils.CloudinaryConfig, log *zap.Logger) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("component", "mediastore")),
	}
}

// UploadBase64Image pushes a base64 payload (with or without data URI prefix)
// and returns the hosted URL plus the public id used for later deletion.
func (c *Client) UploadBase64Image(ctx context.Context, base64Src, publicID string) (*UploadResult, error) {
	if base64Src == "" {
		return nil, fmt.Errorf("empty image payload")
	}

	payload := base64Src
	if i := strings.Index(base64Src, ","); i != -1 {
		payload = base64Src[i+1:]
	}

	if c.config.CloudName == "" || c.config.APIKey == "" || c.config.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not configured")
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + c.config.CloudName + "/image/upload"

	finalPublicID := publicID
	if c.config.Folder != "" {
		finalPublicID = c.config.Folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", c.config.APIKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign(finalPublicID, timestamp))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload image: status %d", res.StatusCode)
	}

	var body struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	c.log.Info("Image uploaded",
		zap.String("public_id", body.PublicID),
	)

	return &UploadResult{URL: body.SecureURL, PublicID: body.PublicID}, nil
}

// Delete removes a previously uploaded image by public id.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	endpoint := "https://api.cloudinary.com/v1_1/" + c.config.CloudName + "/image/destroy"

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("api_key", c.config.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign(publicID, timestamp))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("destroy image: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("destroy image: status %d", res.StatusCode)
	}

	return nil
}

// Cloudinary signs the sorted param string plus the API secret with SHA1.
func (c *Client) sign(publicID, timestamp string) string {
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, c.config.APISecret)
	return fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))
}
