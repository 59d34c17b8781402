package models

import (
	"strings"
	"time"
)

const (
	PrinterStatusOffline = "offline"

	PrinterNameMaxLength         = 120
	PrinterMoonrakerUrlMaxLength = 255
)

type Printer struct {
	Id           int64
	Name         string
	MoonrakerUrl *string
	Status       string
	CreatedAt    time.Time

	// last snapshot fetched from Moonraker
	CurrentFilename *string
	Progress        *float64
	PrintDuration   *float64
	CurrentLayer    *int
	TotalLayer      *int
	LastSyncedAt    *time.Time
}

// TimelineStatus is the lower-cased status, "offline" when unknown.
func (p Printer) TimelineStatus() string {
	status := strings.ToLower(strings.TrimSpace(p.Status))
	if status == "" {
		return PrinterStatusOffline
	}
	return status
}

func (p Printer) IsActive() bool {
	return p.TimelineStatus() != PrinterStatusOffline
}

func (p Printer) CanSync() bool {
	return p.MoonrakerUrl != nil && *p.MoonrakerUrl != ""
}

type CreatePrinterInput struct {
	Name         string
	MoonrakerUrl *string
	Status       string
}

type UpdatePrinterInput struct {
	Id           int64
	Name         *string
	MoonrakerUrl *string
	Status       *string
}

type PrinterSnapshot struct {
	Status    string
	Moonraker *MoonrakerStatus
	SyncedAt  time.Time
}

// NormalizeMoonrakerUrl trims the url and strips trailing slashes. Empty urls become nil.
func NormalizeMoonrakerUrl(url *string) *string {
	if url == nil {
		return nil
	}
	normalized := strings.TrimRight(strings.TrimSpace(*url), "/")
	if normalized == "" {
		return nil
	}
	return &normalized
}
