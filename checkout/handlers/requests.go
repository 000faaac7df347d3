package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/elements"
)

// validate checks the payload shapes gin's binding tags cannot express.
var validate = validator.New()

type behaviorPayload struct {
	TimeOnPageSec  int `json:"time_on_page_sec" validate:"gte=0"`
	ScrollDepthPct int `json:"scroll_depth_pct" validate:"gte=0,lte=100"`
	SectionsViewed int `json:"sections_viewed" validate:"gte=0"`
}

func (b behaviorPayload) toDomain() domain.BehaviorSnapshot {
	return domain.BehaviorSnapshot{
		TimeOnPageSec:  b.TimeOnPageSec,
		ScrollDepthPct: b.ScrollDepthPct,
		SectionsViewed: b.SectionsViewed,
	}
}

type openSessionRequest struct {
	Locale      string             `json:"locale"`
	Attribution domain.Attribution `json:"attribution"`
	Behavior    behaviorPayload    `json:"behavior"`
}

type submitLeadRequest struct {
	FullName         string           `json:"fullName"`
	Email            string           `json:"email"`
	PhoneCountryCode string           `json:"phoneCountryCode"`
	Phone            string           `json:"phone"`
	Behavior         *behaviorPayload `json:"behavior,omitempty"`
}

type elementEventRequest struct {
	Type     string `json:"type" binding:"required,oneof=change ready focus mount_failed"`
	Complete bool   `json:"complete"`
	Message  string `json:"message"`
}

type voucherPayload struct {
	Entity    string `json:"entity"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

type confirmRequest struct {
	Status        string          `json:"status" binding:"omitempty,oneof=succeeded processing requires_action requires_payment_method"`
	PaymentMethod string          `json:"payment_method"`
	ErrorCode     string          `json:"error_code"`
	ErrorMessage  string          `json:"error_message"`
	Voucher       *voucherPayload `json:"voucher,omitempty"`
}

// leadResponse is the step-advance payload: the new snapshot plus the element
// configuration the client mounts exactly once.
type leadResponse struct {
	Snapshot      *domain.Snapshot `json:"snapshot"`
	ElementConfig *elements.Config `json:"element_config"`
}
