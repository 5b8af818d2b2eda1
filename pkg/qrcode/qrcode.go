package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService, QR kod oluşturma işlemlerini sağlayan servis
type QRService struct {
	baseURL string // Temel URL (örn: "https://snapfolio.app")
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// UploadURL misafirlerin tarayınca gideceği yükleme adresini üretir
func (s *QRService) UploadURL(eventID uint) string {
	return fmt.Sprintf("%s/guest/upload?eventId=%d", s.baseURL, eventID)
}

// GenerateQRCode verilen URL için PNG formatında QR kod bayt dizisi oluşturur
func (s *QRService) GenerateQRCode(url string, size int) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
