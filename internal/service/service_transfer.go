// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-ebics-client/internal/adapter"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/models"
)

type fileTransferService struct {
	adapter adapter.TransferAdapter
	traces  trace.Manager
	cfg     models.Configuration
	now     func() time.Time

	logger *logger.Logger
}

func NewFileTransferService(
	transfer adapter.TransferAdapter,
	traces trace.Manager,
	cfg models.Configuration,
	logger *logger.Logger,
) FileTransferService {
	return &fileTransferService{
		adapter: transfer,
		traces:  traces,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *fileTransferService) SendFile(ctx context.Context, content []byte, user *models.User, product models.Product, orderType models.OrderType) error {
	log := userLogger(s.logger, user, orderType)

	session := s.newSession(user, product)
	req := adapter.UploadRequest{
		OrderType: orderType,
		Attribute: models.OrderAttributeUpload,
		OrderID:   user.Partner().NextOrderID(),
		Content:   content,
	}
	if err := s.adapter.Upload(ctx, session, req); err != nil {
		log.Err(err).Str("func", "fileTransferService.SendFile").
			Str("order_id", req.OrderID).
			Msg("error uploading file")
		return fmt.Errorf("%w: upload %s: %w", ErrTransfer, orderType, err)
	}

	log.Info().Str("func", "fileTransferService.SendFile").
		Str("order_id", req.OrderID).
		Int("bytes", len(content)).
		Msg("file uploaded")
	return nil
}

func (s *fileTransferService) FetchFile(ctx context.Context, path string, user *models.User, product models.Product,
	orderType models.OrderType, isTest bool, start, end *time.Time) (models.FetchResult, error) {
	log := userLogger(s.logger, user, orderType)
	log = &logger.Logger{Logger: log.With().Str("file", path).Logger()}

	window, err := ResolveWindow(start, end, s.now())
	if err != nil {
		return models.FetchResult{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.part")
	if err != nil {
		log.Err(err).Str("func", "fileTransferService.FetchFile").Msg("error creating download file")
		return models.FetchResult{}, fmt.Errorf("%w: create %s: %w", ErrTransfer, path, err)
	}
	defer os.Remove(tmp.Name())

	delivered, err := s.download(ctx, log, user, product, orderType, isTest, window, tmp)
	closeErr := tmp.Close()
	if err != nil {
		return models.FetchResult{}, err
	}
	if !delivered {
		return models.FetchResult{Outcome: models.FetchEmpty}, nil
	}
	if closeErr != nil {
		return models.FetchResult{}, fmt.Errorf("%w: write %s: %w", ErrTransfer, path, closeErr)
	}
	// Link fails when path exists, so output that appeared meanwhile is kept.
	if err = os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.Warn().Str("func", "fileTransferService.FetchFile").Msg("output file already exists")
			return models.FetchResult{}, fmt.Errorf("%w: file already exists %s", ErrUsage, path)
		}
		log.Err(err).Str("func", "fileTransferService.FetchFile").Msg("error moving download into place")
		return models.FetchResult{}, fmt.Errorf("%w: write %s: %w", ErrTransfer, path, err)
	}

	log.Info().Str("func", "fileTransferService.FetchFile").Msg("file downloaded")
	return models.FetchResult{Outcome: models.FetchDelivered, Path: path}, nil
}

func (s *fileTransferService) FetchFileContent(ctx context.Context, user *models.User, product models.Product,
	orderType models.OrderType, isTest bool, start, end *time.Time) (models.FetchResult, error) {
	log := userLogger(s.logger, user, orderType)

	window, err := ResolveWindow(start, end, s.now())
	if err != nil {
		return models.FetchResult{}, err
	}

	var buf bytes.Buffer
	delivered, err := s.download(ctx, log, user, product, orderType, isTest, window, &buf)
	if err != nil {
		return models.FetchResult{}, err
	}
	if !delivered {
		return models.FetchResult{Outcome: models.FetchEmpty}, nil
	}

	log.Info().Str("func", "fileTransferService.FetchFileContent").Int("bytes", buf.Len()).Msg("content downloaded")
	return models.FetchResult{Outcome: models.FetchDelivered, Content: buf.Bytes()}, nil
}

// download reports false when the bank had no data for the window.
func (s *fileTransferService) download(ctx context.Context, log *logger.Logger, user *models.User, product models.Product,
	orderType models.OrderType, isTest bool, window models.DateWindow, dst io.Writer) (bool, error) {
	session := s.newSession(user, product)
	session.AddParam(models.ParamFormat, models.StatementFormat)
	if isTest {
		session.AddParam(models.ParamTest, "true")
	}

	req := adapter.DownloadRequest{
		OrderType: orderType,
		Attribute: models.OrderAttributeDownload,
		Window:    window,
	}
	err := s.adapter.Download(ctx, session, req, dst)
	switch {
	case errors.Is(err, adapter.ErrNoDownloadData):
		log.Info().Str("func", "fileTransferService.download").Msg("no download data for the requested window")
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "fileTransferService.download").Msg("error downloading file")
		return false, fmt.Errorf("%w: download %s: %w", ErrTransfer, orderType, err)
	}
	return true, nil
}

func (s *fileTransferService) newSession(user *models.User, product models.Product) *models.Session {
	s.traces.SetTraceDirectory(s.cfg.TransferTraceDirectory(user.UserID()))
	return models.NewSession(user, product, s.cfg)
}

// ResolveWindow builds the download window from optional bounds. A missing
// end defaults to now; an end without a start, or an end before the start,
// is a usage error. No bounds at all leave the window to the bank.
func ResolveWindow(start, end *time.Time, now time.Time) (models.DateWindow, error) {
	switch {
	case start == nil && end == nil:
		return models.DateWindow{}, nil
	case start == nil:
		return models.DateWindow{}, fmt.Errorf("%w: end date given without start date", ErrUsage)
	case end == nil:
		return models.DateWindow{Start: *start, End: now}, nil
	case end.Before(*start):
		return models.DateWindow{}, fmt.Errorf("%w: end date %s is before start date %s",
			ErrUsage, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return models.DateWindow{Start: *start, End: *end}, nil
}
