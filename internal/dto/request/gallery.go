package request

type UploadImageRequest struct {
	DestinationID *string `json:"destination_id,omitempty" validate:"omitempty,uuid4"`
	ImageBase64   string  `json:"image_base64" validate:"required"`
	Caption       *string `json:"caption,omitempty" validate:"omitempty,max=255"`
}
