package domain

type Cake struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Flavor      string  `json:"flavor"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// CakePatch is a partial update. Nil fields keep their stored value.
type CakePatch struct {
	Name        *string
	Description *string
	Flavor      *string
	Price       *float64
	IsAvailable *bool
}

func (p CakePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Flavor == nil &&
		p.Price == nil &&
		p.IsAvailable == nil
}
