package usecase

import (
	"context"
	"time"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInstituteInput defines the data required for an authenticated user to create an institute.
type CreateInstituteInput struct {
	Name        string
	Description *string
}

// InstituteView is the owner-facing representation of an institute.
type InstituteView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     *string   `json:"description"`
	OwnerID         uuid.UUID `json:"ownerId"`
	LogoURL         *string   `json:"logoUrl"`
	Address         *string   `json:"address"`
	Phone           *string   `json:"phone"`
	ShowInfoOnLogin bool      `json:"showInfoOnLogin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PublicInstituteView is what an anonymous visitor of a tenant portal may see.
// Contact fields are only populated when the owner opted in.
type PublicInstituteView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     *string   `json:"description"`
	ShowInfoOnLogin bool      `json:"showInfoOnLogin"`
	LogoURL         *string   `json:"logoUrl,omitempty"`
	Address         *string   `json:"address,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
}

// InstituteSummary is a row of the public institute listing.
type InstituteSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// InstituteUsecase manages institute records and their public portal.
type InstituteUsecase interface {
	Create(ctx context.Context, principal entity.AuthUser, input *CreateInstituteInput) (*InstituteView, error)
	GetMine(ctx context.Context, principal entity.AuthUser) (*InstituteView, error)
	UpdateMineDetails(ctx context.Context, principal entity.AuthUser, patch entity.InstituteDetailsPatch) (*InstituteView, error)
	GetPublicBySlug(ctx context.Context, slug string) (*PublicInstituteView, error)
	ListPublic(ctx context.Context) ([]InstituteSummary, error)

	// PortalQRCode renders a PNG QR code pointing at the institute's login portal.
	PortalQRCode(ctx context.Context, slug string) ([]byte, error)
}

// NewInstituteView maps an institute entity to its owner-facing view.
func NewInstituteView(i *entity.Institute) *InstituteView {
	return &InstituteView{
		ID:              i.ID,
		Name:            i.Name,
		Slug:            i.CanonicalSlug(),
		Description:     i.Description,
		OwnerID:         i.OwnerID,
		LogoURL:         i.LogoURL,
		Address:         i.Address,
		Phone:           i.Phone,
		ShowInfoOnLogin: i.ShowInfoOnLogin,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

// NewPublicInstituteView maps an institute to its public view, hiding contact details unless opted in.
func NewPublicInstituteView(i *entity.Institute) *PublicInstituteView {
	view := &PublicInstituteView{
		ID:              i.ID,
		Name:            i.Name,
		Slug:            i.CanonicalSlug(),
		Description:     i.Description,
		ShowInfoOnLogin: i.ShowInfoOnLogin,
	}
	if i.ShowInfoOnLogin {
		view.LogoURL = i.LogoURL
		view.Address = i.Address
		view.Phone = i.Phone
	}

	return view
}
