package catalog

import "github.com/commercekit/blockforge/pkg/schema"

// Block category identifiers.
const (
	CategoryHero      = "hero"
	CategoryCommerce  = "commerce"
	CategoryMarketing = "marketing"
	CategoryContent   = "content"
)

// All returns the authoritative list of block schemas shipped with the
// platform. The slice is rebuilt on every call; callers own the result.
func All() []schema.BlockSchema {
	return []schema.BlockSchema{
		heroSchema(),
		featuredProductsSchema(),
		dealsCarouselSchema(),
		categoryGridSchema(),
		newsletterSchema(),
		testimonialsSchema(),
		servicePromosSchema(),
		bannerStripSchema(),
		customHTMLSchema(),
		activityHubSchema(),
	}
}

// Categories returns display metadata for every block category.
func Categories() []schema.CategoryInfo {
	return []schema.CategoryInfo{
		{ID: CategoryHero, Name: "Hero", Description: "Large banner sections at the top of a page."},
		{ID: CategoryCommerce, Name: "Commerce", Description: "Product, deal, and category showcases."},
		{ID: CategoryMarketing, Name: "Marketing", Description: "Newsletter, testimonial, and promo sections."},
		{ID: CategoryContent, Name: "Content", Description: "Free-form and embedded content."},
	}
}

func intPtr(v int) *int { return &v }
