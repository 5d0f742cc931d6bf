// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ebics-client/models"
)

// Upload implements [TransferAdapter].
func (h *httpBankAdapter) Upload(ctx context.Context, s *models.Session, upload UploadRequest) error {
	req := newOrderRequest(h.ids.Generate(), s, upload.OrderType)
	req.OrderID = upload.OrderID
	req.OrderAttribute = upload.Attribute
	req.Payload = upload.Content

	_, err := h.send(ctx, s, req)
	return err
}

// Download implements [TransferAdapter].
func (h *httpBankAdapter) Download(ctx context.Context, s *models.Session, download DownloadRequest, dst io.Writer) error {
	req := newOrderRequest(h.ids.Generate(), s, download.OrderType)
	req.OrderAttribute = download.Attribute
	if !download.Window.Start.IsZero() {
		req.Start = download.Window.Start.Format(dateLayout)
	}
	if !download.Window.End.IsZero() {
		req.End = download.Window.End.Format(dateLayout)
	}

	resp, err := h.send(ctx, s, req)
	if err != nil {
		return err
	}

	if _, err = dst.Write(resp.Payload); err != nil {
		return fmt.Errorf("write %s order data: %w", download.OrderType, err)
	}

	return nil
}
