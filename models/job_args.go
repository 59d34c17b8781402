package models

const (
	PrinterSyncAllKind = "printer_sync_all"
	PrinterSyncKind    = "printer_sync"
)

type PrinterSyncAllArgs struct{}

func (PrinterSyncAllArgs) Kind() string { return PrinterSyncAllKind }

type PrinterSyncArgs struct {
	PrinterId int64 `json:"printer_id"`
}

func (PrinterSyncArgs) Kind() string { return PrinterSyncKind }
