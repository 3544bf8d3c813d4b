package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/furnihome/internal/models"
)

type account struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var (
	adminAccount = account{"Administrator", "admin@furnihome.com", "admin123", models.RoleAdmin}
	demoAccount  = account{"Jane Doe", "demo@furnihome.com", "demo123", models.RoleCustomer}
)

func img(id string, w, h int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?w=%d&h=%d&fit=crop", id, w, h)
}

func gallery(ids ...string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = img(id, 800, 600)
	}
	return out
}

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func was(n int64) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.NewFromInt(n)) }

var (
	velvetColors     = []string{"#2d5a4a", "#1a1a2e", "#1e3a5f", "#d4d4d4"}
	velvetColorNames = []string{"Emerald Green", "Charcoal Black", "Navy Blue", "Light Gray"}
	velvetGallery    = []string{"1555041469-a586c61ea9bc", "1550254478-ead40cc54513", "1493663284031-b7e3aefcae8e", "1540574163026-643ea20ade25"}
	velvetCopy       = "Experience ultimate comfort with our plush velvet finish. Designed with ergonomic support and a timeless aesthetic, this sofa brings a touch of modern elegance to any living space."
	velvetMaterials  = "Premium velvet upholstery, solid oak legs, high-density foam cushions"
	sofaDimensions   = models.Dimensions{Width: "210cm", Depth: "90cm", Height: "85cm", SeatHeight: "45cm"}
)

func products() []models.Product {
	return []models.Product{
		{
			Name: "Modern Velvet Sofa", Category: models.CategorySofas,
			Price: price(121500), Rating: 4.8, ReviewCount: 124,
			Image: img(velvetGallery[0], 400, 300), Images: gallery(velvetGallery...),
			Colors: velvetColors, ColorNames: velvetColorNames,
			Description: velvetCopy, Dimensions: sofaDimensions, Materials: velvetMaterials,
			SKU: "SOFA-MV-01", InStock: true, FreeShipping: true,
		},
		{
			Name: "Oak Dining Chair", Category: models.CategoryChairs,
			Price: price(16200), Rating: 4.5, ReviewCount: 86,
			Image: img("1503602642458-232111445657", 400, 300), Images: gallery("1503602642458-232111445657"),
			Colors: []string{"#d4a574", "#2d2d2d"}, ColorNames: []string{"Natural Oak", "Dark Walnut"},
			Description: "Classic oak dining chair with comfortable curved backrest. Perfect for any dining room setup.",
			Dimensions:  models.Dimensions{Width: "45cm", Depth: "50cm", Height: "85cm", SeatHeight: "45cm"},
			Materials:   "Solid oak wood, natural finish",
			SKU:         "CHAIR-OD-02", InStock: true,
		},
		{
			Name: "Minimalist Coffee Table", Category: models.CategoryTables,
			Price: price(47250), Rating: 5.0, ReviewCount: 42,
			Image: img("1532372320572-cda25653a26d", 400, 300), Images: gallery("1532372320572-cda25653a26d"),
			Colors: []string{"#d4a574"}, ColorNames: []string{"Natural Oak"},
			Description: "Sleek minimalist coffee table with clean lines. The perfect centerpiece for any modern living room.",
			Dimensions:  models.Dimensions{Width: "120cm", Depth: "60cm", Height: "40cm"},
			Materials:   "Solid oak wood with natural oil finish",
			SKU:         "TABLE-MC-03", InStock: true, FreeShipping: true,
		},
		{
			Name: "Leather Armchair", Category: models.CategoryChairs,
			Price: price(60750), OriginalPrice: was(71500), Rating: 4.7, ReviewCount: 210,
			Image: img("1586023492125-27b2c045efd7", 400, 300), Images: gallery("1586023492125-27b2c045efd7"),
			Colors: []string{"#8B4513", "#2d2d2d", "#d4a574"}, ColorNames: []string{"Cognac Brown", "Black Leather", "Tan"},
			Description: "Luxurious leather armchair with premium full-grain leather. Exceptionally comfortable with excellent back support.",
			Dimensions:  models.Dimensions{Width: "80cm", Depth: "85cm", Height: "90cm", SeatHeight: "42cm"},
			Materials:   "Full-grain leather, solid wood frame, high-resilience foam",
			SKU:         "CHAIR-LA-04", InStock: true, IsSale: true, FreeShipping: true,
		},
		{
			Name: "Queen Bed Frame", Category: models.CategoryBeds,
			Price: price(81000), Rating: 4.6, ReviewCount: 98,
			Image: img("1505693416388-ac5ce068fe85", 400, 300), Images: gallery("1505693416388-ac5ce068fe85"),
			Colors: []string{"#f5f5dc", "#2d2d2d"}, ColorNames: []string{"Natural Linen", "Charcoal"},
			Description: "Elegant queen-size bed frame with upholstered headboard. Designed for peaceful sleep and stylish bedrooms.",
			Dimensions:  models.Dimensions{Width: "160cm", Depth: "210cm", Height: "120cm"},
			Materials:   "Solid pine frame, premium linen upholstery",
			SKU:         "BED-QF-05", InStock: true, FreeShipping: true,
		},
		{
			Name: "Bedside Table", Category: models.CategoryTables,
			Price: price(12150), Rating: 4.4, ReviewCount: 55,
			Image: img("1499933374294-4584851497cc", 400, 300), Images: gallery("1499933374294-4584851497cc"),
			Colors: []string{"#d4a574", "#f5f5dc"}, ColorNames: []string{"Oak", "White Oak"},
			Description: "Compact bedside table with drawer storage. Perfect companion for any bedroom setup.",
			Dimensions:  models.Dimensions{Width: "45cm", Depth: "40cm", Height: "55cm"},
			Materials:   "Solid oak wood",
			SKU:         "TABLE-BS-06", InStock: true,
		},
		{
			Name: "Scandinavian 3-Seater Velvet Sofa", Category: models.CategorySofas,
			Price: price(175500), OriginalPrice: was(216000), Rating: 4.5, ReviewCount: 128,
			Image: img(velvetGallery[0], 400, 300), Images: gallery(velvetGallery...),
			Colors: velvetColors, ColorNames: velvetColorNames,
			Description: velvetCopy, Dimensions: sofaDimensions, Materials: velvetMaterials,
			SKU: "SCAND-3S-V01", InStock: true, IsSale: true, FreeShipping: true,
		},
		{
			Name: "Mid-Century Velvet Sofa", Category: models.CategorySofas,
			Price: price(148500), Rating: 4.9, ReviewCount: 76,
			Image: img("1567016432779-094069958ea5", 400, 300), Images: gallery("1567016432779-094069958ea5"),
			Colors: []string{"#1e3a5f", "#8B4513"}, ColorNames: []string{"Navy Blue", "Rust Orange"},
			Description: "Classic mid-century design meets modern comfort. This velvet sofa features clean lines and superior craftsmanship.",
			Dimensions:  models.Dimensions{Width: "200cm", Depth: "85cm", Height: "80cm", SeatHeight: "43cm"},
			Materials:   "Premium velvet, solid walnut legs, pocket spring cushions",
			SKU:         "SOFA-MC-08", InStock: true, FreeShipping: true,
		},
	}
}

// sampleReview is keyed by product sku; the author is always the demo user.
type sampleReview struct {
	SKU      string
	UserName string
	Rating   int
	Title    string
	Content  string
	Date     string
	Helpful  int
}

var reviews = []sampleReview{
	{"SOFA-MV-01", "Sarah J.", 5, "Absolutely love the color!",
		"Matches my living room perfectly. The velvet feels very premium and soft to the touch. It was super easy to assemble the legs, took me about 10 minutes. Highly recommend!",
		"2026-01-24", 12},
	{"SOFA-MV-01", "Mike T.", 4, "Great quality, slow delivery",
		"Delivery was slightly delayed by about 3 days, but the quality of the sofa itself is top-notch. It's a bit firmer than I expected, but I think it will soften up over time.",
		"2026-01-19", 4},
	{"SOFA-MV-01", "Elena R.", 5, "Perfect for small apartments",
		"I was worried it might be too big, but the dimensions are spot on. It fits perfectly in my studio. The color is exactly as shown in the pictures.",
		"2026-01-05", 8},
	{"SCAND-3S-V01", "Sarah J.", 5, "Beautiful Scandinavian design",
		"This sofa is stunning! The velvet is so soft and the emerald green color is gorgeous. Assembly was simple and quick. Worth every penny!",
		"2026-01-20", 15},
	{"CHAIR-LA-04", "James K.", 5, "Best leather armchair I've owned",
		"The leather quality is exceptional. Very comfortable for reading and relaxing. The cognac color is rich and elegant. Great value for the price, especially on sale!",
		"2026-01-15", 22},
}

func (r sampleReview) date() time.Time {
	t, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		panic(err)
	}
	return t
}

func week(weekdays, friday, saturday, sunday string) models.OpeningHours {
	return models.OpeningHours{
		Monday: weekdays, Tuesday: weekdays, Wednesday: weekdays, Thursday: weekdays,
		Friday: friday, Saturday: saturday, Sunday: sunday,
	}
}

func stores() []models.Store {
	return []models.Store{
		{
			Name: "Durbar Marg Premium", Address: "Kings Way, Durbar Marg",
			City: "Kathmandu", State: "Bagmati", Zip: "44600", Phone: "+977 1-4220000",
			Lat: 27.712, Lng: 85.3155,
			Hours:    week("10:00 AM - 8:00 PM", "10:00 AM - 9:00 PM", "10:00 AM - 8:00 PM", "11:00 AM - 7:00 PM"),
			Features: []string{models.FeatureWheelchairAccessible, "Valet Parking", "Design Consultation"},
			IsOpen:   true, ClosesAt: "8:00 PM",
		},
		{
			Name: "Jhamsikhel Design Studio", Address: "Jhamsikhel Road, Lalitpur",
			City: "Lalitpur", State: "Bagmati", Zip: "44700", Phone: "+977 1-5520000",
			Lat: 27.674, Lng: 85.3055,
			Hours:    week("10:00 AM - 7:00 PM", "10:00 AM - 7:00 PM", "Closed", "10:00 AM - 5:00 PM"),
			Features: []string{models.FeatureWheelchairAccessible, "Design Consultation"},
			IsOpen:   true, ClosesAt: "7:00 PM",
		},
		{
			Name: "Lazimpat Modern", Address: "Lazimpat, Embassy Road",
			City: "Kathmandu", State: "Bagmati", Zip: "44600", Phone: "+977 1-4410000",
			Lat: 27.725, Lng: 85.321,
			Hours:    week("09:00 AM - 8:00 PM", "09:00 AM - 8:00 PM", "10:00 AM - 6:00 PM", "10:00 AM - 6:00 PM"),
			Features: []string{models.FeatureFreeParking, models.FeatureWheelchairAccessible},
			IsOpen:   true, ClosesAt: "8:00 PM",
		},
		{
			Name: "New Baneshwor Gallery", Address: "Baneshwor Heights",
			City: "Kathmandu", State: "Bagmati", Zip: "44600", Phone: "+977 1-4780000",
			Lat: 27.6915, Lng: 85.34,
			Hours:    week("10:00 AM - 8:00 PM", "10:00 AM - 8:00 PM", "10:00 AM - 8:00 PM", "10:00 AM - 8:00 PM"),
			Features: []string{models.FeatureWheelchairAccessible, "Design Consultation", "Delivery Service"},
			IsOpen:   true, ClosesAt: "8:00 PM",
		},
		{
			Name: "Bhatbhateni Collection", Address: "Bhatbhateni, Naxal",
			City: "Kathmandu", State: "Bagmati", Zip: "44600", Phone: "+977 1-4430000",
			Lat: 27.72, Lng: 85.335,
			Hours:    week("09:30 AM - 8:30 PM", "09:30 AM - 8:30 PM", "09:30 AM - 8:30 PM", "09:30 AM - 8:30 PM"),
			Features: []string{models.FeatureWheelchairAccessible, models.FeatureFreeParking, "Delivery Service"},
			IsOpen:   true, ClosesAt: "8:30 PM",
		},
	}
}
