// Package storefrontv1 holds the storefront.v1 wire types and service
// descriptors. Messages are plain structs marshalled by the JSON codec in
// pkg/codec, so clients must dial with grpc.CallContentSubtype(codec.Name).
package storefrontv1

type Product struct {
	Id             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	Mrp            float64  `json:"mrp"`
	Image          string   `json:"image"`
	Images         []string `json:"images"`
	InStock        bool     `json:"inStock"`
	IsOnSale       bool     `json:"isOnSale"`
	SalePercentage int32    `json:"salePercentage"`
	Savings        float64  `json:"savings"`
}

type ListProductsRequest struct {
	SearchQuery string `json:"searchQuery"`
	Category    string `json:"category"`
	Page        int32  `json:"page"`
	PageSize    int32  `json:"pageSize"`
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	Total      int32      `json:"total"`
	TotalPages int32      `json:"totalPages"`
	Page       int32      `json:"page"`
	PageSize   int32      `json:"pageSize"`
}

type GetProductRequest struct {
	Id int64 `json:"id"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type BrowseState struct {
	SearchQuery      string `json:"searchQuery"`
	SelectedCategory string `json:"selectedCategory"`
	CurrentPage      int32  `json:"currentPage"`
}

// BrowseRequest applies at most one transition to State. ClearFilters wins
// over the other fields; otherwise search, category and page apply in that
// order.
type BrowseRequest struct {
	State        *BrowseState `json:"state"`
	SetSearch    *string      `json:"setSearch,omitempty"`
	SetCategory  *string      `json:"setCategory,omitempty"`
	GoToPage     *int32       `json:"goToPage,omitempty"`
	ClearFilters bool         `json:"clearFilters"`
}

// ProductCard is a product with its prices already formatted for display.
type ProductCard struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Mrp         string `json:"mrp,omitempty"`
	OnSale      bool   `json:"onSale"`
	SaleBadge   string `json:"saleBadge,omitempty"`
	Savings     string `json:"savings,omitempty"`
	InStock     bool   `json:"inStock"`
	BuyLabel    string `json:"buyLabel"`
}

type FilterChip struct {
	Kind  string `json:"kind"` // category | search
	Label string `json:"label"`
}

type CategoryOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// PageItem is either a page number or an ellipsis.
type PageItem struct {
	Page     int32 `json:"page,omitempty"`
	Current  bool  `json:"current,omitempty"`
	Ellipsis bool  `json:"ellipsis,omitempty"`
}

type Pagination struct {
	Visible     bool        `json:"visible"`
	CurrentPage int32       `json:"currentPage"`
	TotalPages  int32       `json:"totalPages"`
	HasPrev     bool        `json:"hasPrev"`
	HasNext     bool        `json:"hasNext"`
	Items       []*PageItem `json:"items"`
}

type ProductGrid struct {
	Cards            []*ProductCard    `json:"cards"`
	ResultsLabel     string            `json:"resultsLabel"`
	Chips            []*FilterChip     `json:"chips"`
	ShowClearFilters bool              `json:"showClearFilters"`
	Categories       []*CategoryOption `json:"categories"`
	Pagination       *Pagination       `json:"pagination"`
	Empty            bool              `json:"empty"`
}

type BrowseResponse struct {
	State *BrowseState `json:"state"`
	Grid  *ProductGrid `json:"grid"`
}

type GetProductDetailRequest struct {
	Id            int64 `json:"id"`
	Quantity      int32 `json:"quantity"`
	SelectedImage int32 `json:"selectedImage"`
}

type ProductDetail struct {
	Card          *ProductCard `json:"card"`
	Quantity      int32        `json:"quantity"`
	CanDecrease   bool         `json:"canDecrease"`
	Images        []string     `json:"images"`
	SelectedImage int32        `json:"selectedImage"`
	MainImage     string       `json:"mainImage"`
	ShowGallery   bool         `json:"showGallery"`
	DiscountLabel string       `json:"discountLabel,omitempty"`
	Total         string       `json:"total"`
}

type ProductDetailResponse struct {
	Detail *ProductDetail `json:"detail"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type Banner struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	LinkKind    string `json:"linkKind"` // anchor | external
}

type ListBannersResponse struct {
	Banners []*Banner `json:"banners"`
}

type ContactInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Instagram string `json:"instagram"`
}

type StoreInfoResponse struct {
	BusinessName string       `json:"businessName"`
	Contact      *ContactInfo `json:"contact"`
}

type BuyNowRequest struct {
	ProductId int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

type BuyNowResponse struct {
	Url     string `json:"url"`
	Message string `json:"message"`
}

type ThemeRequest struct {
	SystemPrefersDark bool `json:"systemPrefersDark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
