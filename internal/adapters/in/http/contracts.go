package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/assignment"
	"parceltrack/internal/core/domain/model/parcel"
)

// Request bodies. Field names follow the wire format used by the
// single-page client, so tags stay snake_case.

type RegisterAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateParcelRequest struct {
	ReceiverName    string  `json:"receiver_name"`
	ReceiverPhone   string  `json:"receiver_phone"`
	ReceiverAddress string  `json:"receiver_address"`
	WeightKg        float64 `json:"weight_kg"`
}

// StaffCreateParcelRequest books a parcel on behalf of an existing customer.
type StaffCreateParcelRequest struct {
	SenderID        string  `json:"sender_id"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverPhone   string  `json:"receiver_phone"`
	ReceiverAddress string  `json:"receiver_address"`
	WeightKg        float64 `json:"weight_kg"`
}

type EditParcelRequest struct {
	ReceiverName    string  `json:"receiver_name"`
	ReceiverPhone   string  `json:"receiver_phone"`
	ReceiverAddress string  `json:"receiver_address"`
	WeightKg        float64 `json:"weight_kg"`
}

type AssignRiderRequest struct {
	ParcelID string `json:"parcel_id"`
	RiderID  string `json:"rider_id"`
}

type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token   string      `json:"token"`
	Account AccountView `json:"account"`
}

type ParcelView struct {
	ID              string    `json:"id"`
	TrackingCode    string    `json:"tracking_code"`
	SenderID        string    `json:"sender_id"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverPhone   string    `json:"receiver_phone"`
	ReceiverAddress string    `json:"receiver_address"`
	WeightKg        float64   `json:"weight_kg"`
	Charge          float64   `json:"charge"`
	Status          string    `json:"status"`
	BookedAt        time.Time `json:"booked_at"`
}

type HistoryEntryView struct {
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

type TrackParcelResponse struct {
	Parcel  ParcelView         `json:"parcel"`
	History []HistoryEntryView `json:"history"`
}

type AssignmentView struct {
	ID         string    `json:"id"`
	ParcelID   string    `json:"parcel_id"`
	RiderID    string    `json:"rider_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

type RiderAssignmentView struct {
	AssignmentID string     `json:"assignment_id"`
	AssignedAt   time.Time  `json:"assigned_at"`
	Parcel       ParcelView `json:"parcel"`
}

func accountViewFromResponse(response queries.AccountResponse) AccountView {
	return AccountView{
		ID:    response.ID.String(),
		Name:  response.Name,
		Email: response.Email,
		Phone: response.Phone,
		Role:  response.Role.String(),
	}
}

func parcelViewFromResponse(response queries.ParcelResponse) ParcelView {
	return ParcelView{
		ID:              response.ID.String(),
		TrackingCode:    response.TrackingCode,
		SenderID:        response.SenderID.String(),
		ReceiverName:    response.ReceiverName,
		ReceiverPhone:   response.ReceiverPhone,
		ReceiverAddress: response.ReceiverAddress,
		WeightKg:        response.WeightKg,
		Charge:          response.Charge,
		Status:          response.Status.String(),
		BookedAt:        response.BookedAt,
	}
}

func parcelViewsFromResponses(responses []queries.ParcelResponse) []ParcelView {
	views := make([]ParcelView, len(responses))
	for i, response := range responses {
		views[i] = parcelViewFromResponse(response)
	}
	return views
}

func parcelViewFromModel(aggregate *parcel.Parcel) ParcelView {
	return ParcelView{
		ID:              aggregate.ID().String(),
		TrackingCode:    aggregate.TrackingCode(),
		SenderID:        aggregate.SenderID().String(),
		ReceiverName:    aggregate.ReceiverName(),
		ReceiverPhone:   aggregate.ReceiverPhone(),
		ReceiverAddress: aggregate.ReceiverAddress(),
		WeightKg:        aggregate.WeightKg(),
		Charge:          aggregate.Charge(),
		Status:          aggregate.Status().String(),
		BookedAt:        aggregate.BookedAt(),
	}
}

func assignmentViewFromModel(aggregate *assignment.Assignment) AssignmentView {
	return AssignmentView{
		ID:         aggregate.ID().String(),
		ParcelID:   aggregate.ParcelID().String(),
		RiderID:    aggregate.RiderID().String(),
		AssignedAt: aggregate.AssignedAt(),
	}
}
