package model

type SocialMedia struct {
	Instagram string `json:"instagram"`
}

type ContactInfo struct {
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	SocialMedia SocialMedia `json:"socialMedia"`
}

// MessageTemplate holds one line per placeholder; see checkout.Compose for
// the layout they are assembled into.
type MessageTemplate struct {
	Greeting       string                 `json:"greeting"`
	ProductDetails ProductDetailsTemplate `json:"productDetails"`
	Closing        string                 `json:"closing"`
}

type ProductDetailsTemplate struct {
	Name          string `json:"name"`          // {productName}
	Price         string `json:"price"`         // {price}
	Category      string `json:"category"`      // {category}
	Quantity      string `json:"quantity"`      // {quantity}
	Total         string `json:"total"`         // {total}
	OriginalPrice string `json:"originalPrice"` // {originalPrice}
	Discount      string `json:"discount"`      // {discountPercentage}
}

// MessagingConfig describes the external chat hand-off target.
type MessagingConfig struct {
	PhoneNumber     string          `json:"phoneNumber"`
	BusinessName    string          `json:"businessName"`
	MessageTemplate MessageTemplate `json:"messageTemplate"`
}
