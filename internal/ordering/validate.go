package ordering

import (
	"regexp"
	"strings"
)

const (
	maxOrderItems      = 20
	maxItemQuantity    = 50
	maxCommentsLength  = 500
	maxPromoCodeLength = 32
)

var (
	emailPattern     = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	promoCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// OrderDraft is an unvalidated order as submitted by a client.
type OrderDraft struct {
	CustomerName    string
	CustomerContact string
	CustomerEmail   string
	DeliveryAddress string
	DeliveryDate    string
	Comments        string
	PromoCode       string
	Items           []ItemSelection
}

// ValidateDraft checks an order draft and returns a map of field name to
// error message. An empty map means the draft is valid.
func ValidateDraft(draft OrderDraft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(draft.CustomerName) == "" {
		errs["customer_name"] = "customer name is required"
	}

	switch {
	case draft.CustomerContact == "":
		errs["customer_contact"] = "customer contact is required"
	case !ValidContact(draft.CustomerContact):
		errs["customer_contact"] = "invalid contact format (use +381... or @username)"
	}

	if strings.TrimSpace(draft.DeliveryAddress) == "" {
		errs["delivery_address"] = "delivery address is required"
	}

	if msg := validateSelections(draft.Items); msg != "" {
		errs["order_items"] = msg
	}

	if draft.CustomerEmail != "" && !emailPattern.MatchString(draft.CustomerEmail) {
		errs["customer_email"] = "invalid email format"
	}

	if len(draft.Comments) > maxCommentsLength {
		errs["comments"] = "comments must not exceed 500 characters"
	}

	return errs
}

// ValidContact accepts a phone number in international format or a Telegram handle.
func ValidContact(contact string) bool {
	if len(contact) < 5 {
		return false
	}

	return strings.HasPrefix(contact, "+") || strings.HasPrefix(contact, "@")
}

// ValidPromoCodeFormat checks the shape of a promo code without consulting storage.
func ValidPromoCodeFormat(code string) bool {
	if code == "" || len(code) > maxPromoCodeLength {
		return false
	}

	return promoCodePattern.MatchString(code)
}

func validateSelections(items []ItemSelection) string {
	if len(items) == 0 {
		return "order must contain at least 1 item"
	}

	if len(items) > maxOrderItems {
		return "maximum 20 different items allowed per order"
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return "quantity must be a positive integer"
		}

		if item.Quantity > maxItemQuantity {
			return "maximum quantity per item is 50"
		}
	}

	return ""
}
