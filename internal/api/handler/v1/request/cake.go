package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/cake-api/internal/domain"
)

var (
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrPriceNotNumber        = errors.New("Price must be a number")
	ErrNoFields              = errors.New("At least one field is required")
)

// CreateCakeRequest keeps price undecoded so that a missing price and a
// price of the wrong type can be told apart.
type CreateCakeRequest struct {
	Name        *string         `json:"name" example:"Test Cake"`
	Description *string         `json:"description" example:"A delicious test cake"`
	Flavor      *string         `json:"flavor" example:"Vanilla"`
	Price       json.RawMessage `json:"price" swaggertype:"number" example:"10"`
	IsAvailable *bool           `json:"is_available" example:"true"`
}

func (req *CreateCakeRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Flavor, validation.Required),
		validation.Field(&req.Price, validation.Required),
		validation.Field(&req.IsAvailable, validation.NotNil),
	)
	if err != nil {
		return ErrMissingRequiredFields
	}

	if _, ok := req.price(); !ok {
		return ErrPriceNotNumber
	}

	return nil
}

func (req *CreateCakeRequest) price() (float64, bool) {
	var v any
	if err := json.Unmarshal(req.Price, &v); err != nil {
		return 0, false
	}

	price, ok := v.(float64)

	return price, ok
}

// ToDomain must only be called after Validate succeeded.
func (req *CreateCakeRequest) ToDomain() domain.Cake {
	price, _ := req.price()

	return domain.Cake{
		Name:        *req.Name,
		Description: *req.Description,
		Flavor:      *req.Flavor,
		Price:       price,
		IsAvailable: *req.IsAvailable,
	}
}

var updateFields = []string{"name", "description", "flavor", "price", "is_available"}

// UpdateCakeRequest counts a key sent as null as supplied. Its column keeps
// the stored value.
type UpdateCakeRequest struct {
	Name        *string  `json:"name" example:"Chocolate Dream"`
	Description *string  `json:"description"`
	Flavor      *string  `json:"flavor"`
	Price       *float64 `json:"price" example:"12"`
	IsAvailable *bool    `json:"is_available"`

	supplied int
}

func (req *UpdateCakeRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateCakeRequest

	var decoded fields
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*req = UpdateCakeRequest(decoded)
	req.supplied = 0
	for _, key := range updateFields {
		if _, ok := keys[key]; ok {
			req.supplied++
		}
	}

	return nil
}

// HasFields reports whether at least one updatable key was in the body,
// null or not.
func (req *UpdateCakeRequest) HasFields() bool {
	return req.supplied > 0 || !req.ToPatch().IsEmpty()
}

func (req *UpdateCakeRequest) Validate() error {
	if !req.HasFields() {
		return ErrNoFields
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty),
		validation.Field(&req.Description, validation.NilOrNotEmpty),
		validation.Field(&req.Flavor, validation.NilOrNotEmpty),
	)
}

func (req *UpdateCakeRequest) ToPatch() domain.CakePatch {
	return domain.CakePatch{
		Name:        req.Name,
		Description: req.Description,
		Flavor:      req.Flavor,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}
}

// Bind decodes the JSON body into req. An empty body decodes as {} and a
// non-numeric price reports ErrPriceNotNumber.
func Bind(ctx *gin.Context, req any) error {
	err := ctx.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "price" {
		return ErrPriceNotNumber
	}

	return err
}
