package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

// ServiceType is a family of counter services priced from the catalog.
type ServiceType string

const (
	ServicePrinting   ServiceType = "printing"
	ServicePhotocopy  ServiceType = "photocopy"
	ServiceScan       ServiceType = "scan"
	ServiceLamination ServiceType = "lamination"
	ServicePVC        ServiceType = "pvc"
)

// PVCEditKey is the per-piece surcharge for PVC IDs that need layout work.
const PVCEditKey = "pvc_edit"

// ServiceRequest is an operator's structured service choice.
type ServiceRequest struct {
	Type      ServiceType `json:"type"`
	PrintType string      `json:"printType,omitempty"` // bw or color
	PaperSize string      `json:"paperSize,omitempty"` // a4, letter, legal
	ScanType  string      `json:"scanType,omitempty"`  // scan_only or ecopy
	Size      string      `json:"size,omitempty"`      // lamination size tier
	PVCType   string      `json:"pvcType,omitempty"`   // front or back
	WithEdit  bool        `json:"withEdit,omitempty"`
	Quantity  int         `json:"quantity"`
}

// ServiceQuote is a priced service request, ready to add to a cart.
type ServiceQuote struct {
	Key         string
	Description string
	UnitPrice   Cents
	Quantity    int
}

// Quote resolves the request against catalog.
func (r ServiceRequest) Quote(catalog PriceCatalog) (ServiceQuote, error) {
	if r.Quantity <= 0 {
		return ServiceQuote{}, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}

	var key, description string
	switch r.Type {
	case ServicePrinting, ServicePhotocopy:
		if r.PrintType == "" || r.PaperSize == "" {
			return ServiceQuote{}, fmt.Errorf("%w: printType and paperSize are required", apperrors.ErrValidation)
		}
		key = fmt.Sprintf("%s_%s_%s", r.Type, r.PrintType, r.PaperSize)
		label := "Printing"
		if r.Type == ServicePhotocopy {
			label = "Photocopy"
		}
		mode := "Color"
		if r.PrintType == "bw" {
			mode = "B&W"
		}
		description = fmt.Sprintf("%s: %d pg(s) (%s, %s)", label, r.Quantity, r.PaperSize, mode)
	case ServiceScan:
		if r.ScanType == "" {
			return ServiceQuote{}, fmt.Errorf("%w: scanType is required", apperrors.ErrValidation)
		}
		key = r.ScanType
		mode := "Scan Only"
		if r.ScanType == "ecopy" {
			mode = "with E-Copy"
		}
		description = fmt.Sprintf("Scan: %d pg(s) (%s)", r.Quantity, mode)
	case ServiceLamination:
		if r.Size == "" {
			return ServiceQuote{}, fmt.Errorf("%w: size is required", apperrors.ErrValidation)
		}
		key = "lamination_" + r.Size
		description = fmt.Sprintf("Lamination: %d pc(s) (%s)", r.Quantity, strings.ReplaceAll(r.Size, "_", " "))
	case ServicePVC:
		if r.PVCType == "" {
			return ServiceQuote{}, fmt.Errorf("%w: pvcType is required", apperrors.ErrValidation)
		}
		key = "pvc_" + r.PVCType
		side := "Front Only"
		if r.PVCType == "back" {
			side = "Back-to-Back"
		}
		edit := "no"
		if r.WithEdit {
			edit = "yes"
		}
		description = fmt.Sprintf("PVC ID: %d pc(s) (%s, Edit: %s)", r.Quantity, side, edit)
	default:
		return ServiceQuote{}, fmt.Errorf("%w: unknown service type %q", apperrors.ErrValidation, r.Type)
	}

	unit, err := catalog.Price(key)
	if err != nil {
		return ServiceQuote{}, err
	}
	if r.Type == ServicePVC && r.WithEdit {
		surcharge, err := catalog.Price(PVCEditKey)
		if err != nil {
			return ServiceQuote{}, err
		}
		unit += surcharge
	}

	return ServiceQuote{Key: key, Description: description, UnitPrice: unit, Quantity: r.Quantity}, nil
}
