package booking

import (
	"errors"
	"strings"
	"unicode"
)

const maxNameLength = 100

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name exceeds maximum length")
	ErrInvalidPhone = errors.New("phone number is invalid")
	ErrEmptyService = errors.New("service type cannot be empty")
)

type Name struct {
	value string
}

func NewName(v string) (Name, error) {
	t := strings.TrimSpace(v)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len(t) > maxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Phone struct {
	value string
}

func NewPhone(v string) (Phone, error) {
	t := strings.TrimSpace(v)
	if len(t) < 7 || len(t) > 20 {
		return Phone{}, ErrInvalidPhone
	}
	for i, r := range t {
		if unicode.IsDigit(r) || r == ' ' || r == '-' || (r == '+' && i == 0) {
			continue
		}
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: t}, nil
}

func (p Phone) String() string { return p.value }

// ServiceType is an open set: the operator offers whatever services they
// offer, the engine only requires the label to be present.
type ServiceType struct {
	value string
}

func NewServiceType(v string) (ServiceType, error) {
	t := strings.TrimSpace(v)
	if t == "" {
		return ServiceType{}, ErrEmptyService
	}
	return ServiceType{value: t}, nil
}

func (s ServiceType) String() string { return s.value }

// Reconstruct helpers restore persisted values without re-validation.

func ReconstructName(v string) Name               { return Name{value: v} }
func ReconstructPhone(v string) Phone             { return Phone{value: v} }
func ReconstructServiceType(v string) ServiceType { return ServiceType{value: v} }
