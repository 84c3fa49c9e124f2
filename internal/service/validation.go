package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input limits
const (
	MinPasswordLength   = 8
	MaxPasswordLength   = 72 // bcrypt ignores bytes past 72
	MinCartQuantity     = 1
	MaxCartQuantity     = 99
	MaxAddressesPerUser = 10
	MinContactMessage   = 10
	MaxContactMessage   = 5000
	MaxNotesLength      = 500
	MaxNameLength       = 100
	MaxProductName      = 200
	MaxDescription      = 5000
	MaxTags             = 20
)

var (
	paymentReferencePattern = regexp.MustCompile(`^[0-9]{12}$`)
	phMobilePattern         = regexp.MustCompile(`^(09|\+639)[0-9]{9}$`)
	postalCodePattern       = regexp.MustCompile(`^[0-9]{4}$`)
	slugPattern             = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	referenceSeparators     = strings.NewReplacer(" ", "", "-", "")
)

// ValidatePayment checks a payment method and its reference number.
// GCash and Maya references are trimmed, stripped of spaces and dashes and must
// then be exactly 12 digits. Cash on delivery carries no reference, so any
// supplied value is dropped. Only the format is checked; nothing is verified
// with the payment provider.
func ValidatePayment(method, reference string) (PaymentMethod, string, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(method)))

	switch m {
	case PaymentMethodCOD:
		return m, "", nil
	case PaymentMethodGCash, PaymentMethodMaya:
		ref := referenceSeparators.Replace(strings.TrimSpace(reference))
		if !paymentReferencePattern.MatchString(ref) {
			return m, "", ErrInvalidPaymentReference
		}
		return m, ref, nil
	default:
		return "", "", ErrInvalidPaymentMethod
	}
}

// NormalizeEmail trims and lower-cases an email address and checks its syntax.
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", NewValidationError("email", "is required")
	}

	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e || !strings.Contains(e[strings.LastIndex(e, "@"):], ".") {
		return "", NewValidationError("email", "is not a valid email address")
	}
	return e, nil
}

// ValidatePassword enforces the password policy: 8 to 72 bytes with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return NewValidationError("password", "must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password", "must be at most %d bytes", MaxPasswordLength)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return NewValidationError("password", "must contain at least one letter and one digit")
	}
	return nil
}

// NormalizePhone strips spaces and dashes and checks for a Philippine mobile
// number in 09XXXXXXXXX or +639XXXXXXXXX form.
func NormalizePhone(field, phone string) (string, error) {
	p := referenceSeparators.Replace(strings.TrimSpace(phone))
	if !phMobilePattern.MatchString(p) {
		return "", NewValidationError(field, "must be a mobile number like 09171234567 or +639171234567")
	}
	return p, nil
}

// ValidateQuantity checks a cart line quantity
func ValidateQuantity(quantity int) error {
	if quantity < MinCartQuantity || quantity > MaxCartQuantity {
		return NewValidationError("quantity", "must be between %d and %d", MinCartQuantity, MaxCartQuantity)
	}
	return nil
}

func requireText(field, value string, maxLen int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", NewValidationError(field, "is required")
	}
	if utf8.RuneCountInString(v) > maxLen {
		return "", NewValidationError(field, "must be at most %d characters", maxLen)
	}
	return v, nil
}

func optionalText(field, value string, maxLen int) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > maxLen {
		return "", NewValidationError(field, "must be at most %d characters", maxLen)
	}
	return v, nil
}

// Normalize validates the registration and cleans it in place
func (in *RegisterInput) Normalize() error {
	var err error
	if in.FirstName, err = requireText("first_name", in.FirstName, MaxNameLength); err != nil {
		return err
	}
	if in.LastName, err = requireText("last_name", in.LastName, MaxNameLength); err != nil {
		return err
	}
	if in.Email, err = NormalizeEmail(in.Email); err != nil {
		return err
	}
	if strings.TrimSpace(in.Phone) != "" {
		if in.Phone, err = NormalizePhone("phone", in.Phone); err != nil {
			return err
		}
	} else {
		in.Phone = ""
	}
	return ValidatePassword(in.Password)
}

// Normalize validates the profile update and cleans it in place
func (in *ProfileInput) Normalize() error {
	var err error
	if in.FirstName, err = requireText("first_name", in.FirstName, MaxNameLength); err != nil {
		return err
	}
	if in.LastName, err = requireText("last_name", in.LastName, MaxNameLength); err != nil {
		return err
	}
	if strings.TrimSpace(in.Phone) == "" {
		in.Phone = ""
		return nil
	}
	in.Phone, err = NormalizePhone("phone", in.Phone)
	return err
}

// Normalize validates the administrator's update and cleans it in place
func (in *UserUpdate) Normalize() error {
	if in.FirstName != nil {
		v, err := requireText("first_name", *in.FirstName, MaxNameLength)
		if err != nil {
			return err
		}
		in.FirstName = &v
	}
	if in.LastName != nil {
		v, err := requireText("last_name", *in.LastName, MaxNameLength)
		if err != nil {
			return err
		}
		in.LastName = &v
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) != "" {
		v, err := NormalizePhone("phone", *in.Phone)
		if err != nil {
			return err
		}
		in.Phone = &v
	}
	if in.Role != nil && *in.Role != RoleCustomer && *in.Role != RoleAdmin {
		return NewValidationError("role", "must be customer or admin")
	}
	if in.Status != nil && *in.Status != UserStatusActive && *in.Status != UserStatusSuspended {
		return NewValidationError("status", "must be active or suspended")
	}
	return nil
}

// Normalize validates the address and cleans it in place
func (in *AddressInput) Normalize() error {
	var err error
	if in.Label, err = optionalText("label", in.Label, 50); err != nil {
		return err
	}
	if in.Label == "" {
		in.Label = "Home"
	}
	if in.RecipientName, err = requireText("recipient_name", in.RecipientName, MaxNameLength); err != nil {
		return err
	}
	if in.Phone, err = NormalizePhone("phone", in.Phone); err != nil {
		return err
	}
	if in.Street, err = requireText("street", in.Street, 200); err != nil {
		return err
	}
	if in.Barangay, err = optionalText("barangay", in.Barangay, MaxNameLength); err != nil {
		return err
	}
	if in.City, err = requireText("city", in.City, MaxNameLength); err != nil {
		return err
	}
	if in.Province, err = requireText("province", in.Province, MaxNameLength); err != nil {
		return err
	}
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	if !postalCodePattern.MatchString(in.PostalCode) {
		return NewValidationError("postal_code", "must be 4 digits")
	}
	return nil
}

// Normalize validates the product and cleans it in place. An empty slug is derived from the name.
func (in *ProductInput) Normalize() error {
	var err error
	if in.Name, err = requireText("name", in.Name, MaxProductName); err != nil {
		return err
	}

	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
	if !slugPattern.MatchString(in.Slug) {
		return NewValidationError("slug", "must contain only lower-case letters, digits and single dashes")
	}

	if in.Description, err = optionalText("description", in.Description, MaxDescription); err != nil {
		return err
	}
	if in.Category, err = requireText("category", in.Category, MaxNameLength); err != nil {
		return err
	}
	if in.FarmName, err = optionalText("farm_name", in.FarmName, MaxNameLength); err != nil {
		return err
	}
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	if in.PriceCents <= 0 {
		return NewValidationError("price_cents", "must be greater than zero")
	}
	if in.Stock < 0 {
		return NewValidationError("stock", "must not be negative")
	}

	in.Unit = strings.ToLower(strings.TrimSpace(in.Unit))
	if !slices.Contains(ProductUnits, in.Unit) {
		return NewValidationError("unit", "must be one of %s", strings.Join(ProductUnits, ", "))
	}

	switch in.Status {
	case "":
		in.Status = ProductStatusActive
	case ProductStatusActive, ProductStatusArchived:
	default:
		return NewValidationError("status", "must be active or archived")
	}

	in.Tags = NormalizeTags(in.Tags)
	if len(in.Tags) > MaxTags {
		return NewValidationError("tags", "at most %d tags are allowed", MaxTags)
	}
	return nil
}

// Normalize validates the checkout request, returning the payment method and normalized reference
func (in *CheckoutInput) Normalize() (PaymentMethod, string, error) {
	method, ref, err := ValidatePayment(in.PaymentMethod, in.PaymentReference)
	if err != nil {
		return "", "", err
	}
	if in.Notes, err = optionalText("notes", in.Notes, MaxNotesLength); err != nil {
		return "", "", err
	}
	in.PaymentMethod = string(method)
	in.PaymentReference = ref
	return method, ref, nil
}

// Normalize validates the contact message and cleans it in place
func (in *ContactInput) Normalize() error {
	var err error
	if in.Name, err = requireText("name", in.Name, MaxNameLength); err != nil {
		return err
	}
	if in.Email, err = NormalizeEmail(in.Email); err != nil {
		return err
	}
	if in.Subject, err = optionalText("subject", in.Subject, 200); err != nil {
		return err
	}
	if in.Subject == "" {
		in.Subject = "General inquiry"
	}

	in.Message = strings.TrimSpace(in.Message)
	if n := utf8.RuneCountInString(in.Message); n < MinContactMessage || n > MaxContactMessage {
		return NewValidationError("message", "must be between %d and %d characters", MinContactMessage, MaxContactMessage)
	}
	return nil
}

// NormalizeTags lower-cases, trims and de-duplicates tags, keeping first-seen order
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// Slugify turns a product name into a URL slug: "Baguio Strawberries (500g)" -> "baguio-strawberries-500g"
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == 'ñ':
			b.WriteRune('n')
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ValidateContactStatus checks a contact message status value
func ValidateContactStatus(status ContactStatus) error {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusArchived:
		return nil
	default:
		return NewValidationError("status", "must be new, read or archived")
	}
}

// ParseOrderStatus validates an order status value
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	default:
		return "", NewValidationError("status", "unknown order status %q", s)
	}
}

// ParsePaymentMethod validates a payment method filter value
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case PaymentMethodCOD, PaymentMethodGCash, PaymentMethodMaya:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
}
