package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthscan/catalog"
	"healthscan/logger"
	"healthscan/models"
	"healthscan/repository"
	"healthscan/utils"

	"go.uber.org/zap"
)

var ErrEmptyImage = errors.New("an image is required before scanning")

const CameraUnavailableMessage = "Camera functionality not implemented in this demo"

// ImageStore archives uploaded images and returns where they live.
type ImageStore interface {
	PutImage(ctx context.Context, prefix string, img *utils.DecodedImage) (string, error)
}

type ScanService struct {
	cat     *catalog.Catalog
	images  ImageStore // optional
	records repository.ScanRecordRepository
	sim     Simulator
	now     func() time.Time
}

func NewScanService(cat *catalog.Catalog, images ImageStore, records repository.ScanRecordRepository, sim Simulator) *ScanService {
	return &ScanService{cat: cat, images: images, records: records, sim: sim, now: time.Now}
}

// Scan accepts a product photo as a data URI and resolves with the mock
// ingredient analysis. The image itself is not analysed.
func (s *ScanService) Scan(ctx context.Context, imageDataURI string) (*models.ScanResult, error) {
	if strings.TrimSpace(imageDataURI) == "" {
		return nil, ErrEmptyImage
	}
	img, err := utils.DecodeImageDataURI(imageDataURI)
	if err != nil {
		return nil, err
	}

	var imageURL string
	if s.images != nil {
		imageURL, err = s.images.PutImage(ctx, "scans", img)
		if err != nil {
			// archiving is best effort; the scan result does not depend on it
			logger.Warn("scan image archive failed", zap.Error(err))
		}
	}

	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	result := s.cat.ScanResult()
	label := utils.LabelForScore(result.OverallRating.Score)
	result.OverallRating.Label = label.Label
	result.OverallRating.LabelDescription = label.Description
	result.ImageURL = imageURL

	rec := &models.ScanRecord{
		ImageURL:     imageURL,
		Score:        result.OverallRating.Score,
		Label:        label.Label,
		HarmfulCount: result.HarmfulCount,
		CreatedAt:    s.now(),
	}
	if err := s.records.Save(ctx, rec); err != nil {
		logger.Error("failed to save scan record", zap.Error(err))
	}

	return &result, nil
}

func (s *ScanService) History(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	return s.records.Recent(ctx, limit)
}
