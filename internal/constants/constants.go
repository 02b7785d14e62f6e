package constants

import "time"

const (
	AppName = "portal-client"

	DefaultSessionDBPath = "portal-session.db"
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultMaxRetries    = 2
	DefaultRetryInitial  = 500 * time.Millisecond
	DefaultAssetBucket   = "home-veda-storage"
	DefaultAssetRegion   = "ap-south-1"
	LDConnectionTimeout  = 5 * time.Second
	LDServerContextKind  = "portal-client"
	LDServerContextKey   = "home-veda-portal"
)

// Session storage keys. The backend issues the tokens, the client only keeps them.
const (
	SessionKeyAdminToken = "adminToken"
	SessionKeyAdminEmail = "adminEmail"
	SessionKeyUserToken  = "userToken"
	SessionKeyUserEmail  = "userEmail"
)

// Notification lifetimes and navigation delays.
const (
	DefaultNotificationDuration = 5000 * time.Millisecond
	FormNotificationDuration    = 4000 * time.Millisecond

	LoginRedirectDelay   = 1500 * time.Millisecond
	SignupSwitchDelay    = 1500 * time.Millisecond
	LeadRedirectDelay    = 1200 * time.Millisecond
	CatalogRedirectDelay = 2000 * time.Millisecond
	ProjectRedirectDelay = 2000 * time.Millisecond
	DesignRedirectDelay  = 2000 * time.Millisecond
	ResetRedirectDelay   = 2000 * time.Millisecond
)

// FilterAll is the "no filter" sentinel shared by every select filter.
const FilterAll = "All"

// Catalog categories.
const (
	CategoryBuilder  = "Builder"
	CategoryEconomy  = "Economy"
	CategoryStandard = "Standard"
	CategoryVedaX    = "VedaX"
)

var CatalogCategories = []string{CategoryBuilder, CategoryEconomy, CategoryStandard, CategoryVedaX}

// Catalog item types. Premium items carry a video in addition to the image.
const (
	ItemTypeNormal  = "Normal"
	ItemTypePremium = "Premium"
)

var CatalogItemTypes = []string{ItemTypeNormal, ItemTypePremium}

const (
	WorkTypeWood          = "Wood Work"
	WorkTypeMainHardware  = "Main Hardware"
	WorkTypeOtherHardware = "Other Hardware"
	WorkTypeMiscellaneous = "Miscellaneous"
	WorkTypeCountertop    = "Countertop"
)

var CatalogWorkTypes = []string{
	WorkTypeWood,
	WorkTypeMainHardware,
	WorkTypeOtherHardware,
	WorkTypeMiscellaneous,
	WorkTypeCountertop,
}

// Lead statuses.
const (
	LeadStatusNew      = "New"
	LeadStatusHot      = "Hot"
	LeadStatusClosed   = "Closed"
	LeadStatusFollowUp = "Follow Up"

	ArchitectStatusNotCreated = "Account Not Created"
	ArchitectStatusCreated    = "Account Created"
)

var LeadStatuses = []string{LeadStatusNew, LeadStatusHot, LeadStatusClosed, LeadStatusFollowUp}

var ArchitectStatuses = []string{ArchitectStatusNotCreated, ArchitectStatusCreated}

// Kitchen configuration options.
const (
	KitchenTypeLShape   = "L-Shape"
	KitchenTypeUShape   = "U-Shape"
	KitchenTypeParallel = "Parallel"
	KitchenTypeStraight = "Straight"

	DefaultCounterRequirement = "Island"
	DefaultKitchenTheme       = "Modern"
)

var KitchenTypes = []string{KitchenTypeLShape, KitchenTypeUShape, KitchenTypeParallel, KitchenTypeStraight}

var KitchenAppliances = []string{
	"Inbuilt microwave",
	"Inbuilt refrigerator",
	"Normal fridge single door",
	"Dishwasher",
	"Island chimney",
	"Wall mounted chimney",
	"IGL",
	"Gas cylinder",
	"Inbuilt oven",
	"Normal fridge double door",
	"Ro under sink",
	"Ro above sink",
	"Inbuilt hob",
	"Countertop hob",
}

var KitchenThemes = []string{
	"Classical",
	"Modern",
	"Modern luxury",
	"Modern minimalist",
	"Minimalist",
	"Contemporary",
	"Japandi",
	"Mid-century",
}

const (
	WardrobeHinged  = "Hinged"
	WardrobeSliding = "Sliding"
)

var WardrobeTypes = []string{WardrobeHinged, WardrobeSliding}
