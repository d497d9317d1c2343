package dto

import (
	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/store"
)

type CreateBookingRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
	Day    int    `json:"day"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AddMediaRequest struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type UpdateCaptionRequest struct {
	Caption string `json:"caption"`
}

// UpdateConfigRequest mirrors store.ConfigPatch on the wire: absent fields
// stay nil and leave the current value untouched.
type UpdateConfigRequest struct {
	Title        *string              `json:"title,omitempty"`
	Description  *string              `json:"description,omitempty"`
	HeroImage    *string              `json:"hero_image,omitempty"`
	PriceBase    *int                 `json:"price_base,omitempty"`
	PriceExtra   *int                 `json:"price_extra,omitempty"`
	Gallery      *[]models.MediaItem  `json:"gallery,omitempty"`
	TransferInfo *models.TransferInfo `json:"transfer_info,omitempty"`
}

func (r UpdateConfigRequest) ToPatch() store.ConfigPatch {
	return store.ConfigPatch{
		Title:        r.Title,
		Description:  r.Description,
		HeroImage:    r.HeroImage,
		PriceBase:    r.PriceBase,
		PriceExtra:   r.PriceExtra,
		Gallery:      r.Gallery,
		TransferInfo: r.TransferInfo,
	}
}
