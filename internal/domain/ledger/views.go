package ledger

import "time"

// Read-side views returned by ledger queries. Plain exported structs so the
// query layer can map them to transport DTOs without reaching into entities.

type CheckOutSummary struct {
	CustomerID     string
	CustomerName   string
	RoomNumber     string
	CheckedInAt    time.Time
	CheckedOutAt   time.Time
	ServiceCharges float64
}

type ReservationView struct {
	CustomerID   string
	CustomerName string
	RoomNumber   string
	Length       int
	StartDate    time.Time
	IsActive     bool
}

type PendingService struct {
	RoomNumber  string
	ServiceName string
	Price       float64
	Provider    string
}

type ServiceRecordLine struct {
	ServiceName string
	Price       float64
	Provider    string
}

type CardView struct {
	CardID     string
	RoomNumber string
	IsActive   bool
	HolderID   string
	HolderName string
}

type RoomOccupancy struct {
	RoomNumber      string
	Occupied        bool
	CustomerID      string
	CustomerName    string
	Cards           []CardView
	PendingServices []string
}
