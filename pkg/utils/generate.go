package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingCode creates a human-facing booking code with timestamp
func GenerateBookingCode() string {
	now := time.Now()

	// Format: SFR-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("SFR-%s-%s-%s", datePart, timePart, randomPart)
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
