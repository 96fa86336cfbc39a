package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"time"

	"desk/config"
	"desk/infras/otel"
	"desk/infras/s3"
	bookingDto "desk/internal/domains/booking/model/dto"
	bookingService "desk/internal/domains/booking/service"
	"desk/internal/domains/report/model/dto"
	"desk/shared/calendar"
	"desk/shared/constant"
	"desk/shared/failure"

	"github.com/rs/zerolog/log"
)

// Report renders booking data into files for office administrators.
type Report interface {
	ExportWeek(ctx context.Context, year, week int, actor string, now time.Time) (dto.ExportResponse, error)
}

type serviceImpl struct {
	bookings bookingService.Booking
	store    s3.S3
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings bookingService.Booking, store s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookings: bookings,
		store:    store,
		cfg:      cfg,
		otel:     otel,
	}
}

// ExportWeek writes every booking of an ISO week to a CSV object and returns where it lives.
func (s *serviceImpl) ExportWeek(ctx context.Context, year, week int, actor string, now time.Time) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportWeek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	weekLabel := fmt.Sprintf(constant.ISOWeekFormat, year, week)
	scope.SetAttributes(map[string]any{"report.week": weekLabel, "report.actor": actor})

	bookings, err := s.bookings.GetWeek(ctx, year, week)
	if err != nil {
		return res, fmt.Errorf("failed to load week %s: %w", weekLabel, err)
	}

	data, err := encodeWeek(bookings.Bookings)
	if err != nil {
		log.Error().Err(err).Str("week", weekLabel).Msg("failed to encode week report")

		return res, failure.InternalError(fmt.Errorf("failed to encode report: %w", err)) // nolint:wrapcheck
	}

	directory := s.cfg.External.S3.ReportDirectory
	fileName := dto.ExportFileName(year, week, now)

	url, err := s.store.PutObject(ctx, directory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("week", weekLabel).Msg("failed to store week report")

		return res, failure.Unavailable(fmt.Errorf("failed to store report: %w", err)) // nolint:wrapcheck
	}

	log.Info().Str("week", weekLabel).Str("actor", actor).Int("rows", len(bookings.Bookings)).Str("url", url).Msg("week report exported")

	return dto.ExportResponse{
		Week:        weekLabel,
		Rows:        len(bookings.Bookings),
		ObjectKey:   path.Join(directory, fileName),
		URL:         url,
		GeneratedAt: now.UTC().Format(constant.DateFormat),
	}, nil
}

func encodeWeek(bookings []bookingDto.BookingResponse) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(dto.ExportColumns); err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		date, err := calendar.ParseDate(booking.Date)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", booking.ID, err)
		}

		record := []string{
			booking.Date,
			date.Weekday().String(),
			string(calendar.WeekTypeOf(date)),
			strconv.Itoa(booking.SeatNumber),
			booking.SeatType,
			booking.UserID,
			booking.ID,
		}

		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()

	return buf.Bytes(), writer.Error()
}
