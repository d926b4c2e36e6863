package ratebook

type baseCostRange struct {
	low, avg, high float64
}

// Base cost per SF by occupancy code. Representative ranges; a live
// pricing feed would be more granular.
var baseCosts = map[string]baseCostRange{
	// Residential
	"sfr-detached":     {low: 95, avg: 145, high: 250},
	"townhouse":        {low: 90, avg: 135, high: 220},
	"duplex":           {low: 85, avg: 125, high: 195},
	"manufactured-hud": {low: 55, avg: 80, high: 110},

	// Office
	"office-lowrise":  {low: 125, avg: 175, high: 275},
	"office-midrise":  {low: 150, avg: 210, high: 325},
	"office-highrise": {low: 185, avg: 265, high: 400},
	"medical-office":  {low: 175, avg: 250, high: 375},
	"bank-branch":     {low: 175, avg: 250, high: 375},

	// Retail
	"retail-general":      {low: 85, avg: 125, high: 200},
	"strip-center":        {low: 80, avg: 120, high: 185},
	"discount-bigbox":     {low: 65, avg: 95, high: 145},
	"restaurant-sitdown":  {low: 175, avg: 250, high: 400},
	"restaurant-fastfood": {low: 150, avg: 210, high: 325},
	"auto-repair":         {low: 85, avg: 120, high: 180},
	"gas-station":         {low: 135, avg: 185, high: 285},
	"parking-structure":   {low: 55, avg: 75, high: 110},

	// Industrial
	"warehouse-general":   {low: 55, avg: 80, high: 125},
	"distribution-center": {low: 65, avg: 95, high: 150},
	"cold-storage":        {low: 125, avg: 175, high: 275},
	"mini-storage":        {low: 45, avg: 65, high: 100},
	"manufacturing-light": {low: 75, avg: 110, high: 175},
	"manufacturing-heavy": {low: 95, avg: 140, high: 225},
	"flex-rd":             {low: 95, avg: 140, high: 225},

	// Multi-family / lodging
	"apartment-lowrise":  {low: 95, avg: 140, high: 225},
	"apartment-midrise":  {low: 125, avg: 180, high: 285},
	"apartment-highrise": {low: 165, avg: 240, high: 375},
	"hotel-limited":      {low: 115, avg: 165, high: 265},
	"motel":              {low: 75, avg: 110, high: 175},

	// Agricultural
	"barn-general": {low: 25, avg: 40, high: 65},
	"pole-barn":    {low: 18, avg: 28, high: 45},
	"grain-bin":    {low: 8, avg: 12, high: 20},
}

var qualityMultipliers = map[string]float64{
	"low":       0.75,
	"fair":      0.85,
	"average":   1.0,
	"good":      1.15,
	"excellent": 1.35,
	"luxury":    1.60,
}

// Local cost multiplier by US state.
var stateLocalMultipliers = map[string]float64{
	"AL": 0.87, "AK": 1.28, "AZ": 0.93, "AR": 0.85, "CA": 1.18,
	"CO": 0.98, "CT": 1.12, "DE": 1.02, "FL": 0.92, "GA": 0.88,
	"HI": 1.35, "ID": 0.92, "IL": 1.05, "IN": 0.94, "IA": 0.93,
	"KS": 0.90, "KY": 0.89, "LA": 0.88, "ME": 0.95, "MD": 1.00,
	"MA": 1.15, "MI": 0.98, "MN": 1.02, "MS": 0.84, "MO": 0.95,
	"MT": 0.94, "NE": 0.91, "NV": 1.05, "NH": 1.00, "NJ": 1.14,
	"NM": 0.90, "NY": 1.20, "NC": 0.86, "ND": 0.93, "OH": 0.95,
	"OK": 0.86, "OR": 1.02, "PA": 1.01, "RI": 1.08, "SC": 0.85,
	"SD": 0.88, "TN": 0.87, "TX": 0.88, "UT": 0.93, "VT": 0.95,
	"VA": 0.93, "WA": 1.05, "WV": 0.92, "WI": 0.99, "WY": 0.93,
	"DC": 1.05,
}

type siteCostEntry struct {
	cost float64
	unit string
}

var siteImprovementCosts = map[string]siteCostEntry{
	// Paving
	"asphalt-paving":    {cost: 4.50, unit: "SF"},
	"concrete-paving":   {cost: 8.00, unit: "SF"},
	"gravel-surface":    {cost: 1.50, unit: "SF"},
	"heavy-duty-paving": {cost: 12.00, unit: "SF"},
	"sidewalk":          {cost: 7.00, unit: "SF"},
	"curbing":           {cost: 18.00, unit: "LF"},
	"striping":          {cost: 2500, unit: "LS"},

	// Fencing
	"chain-link-fence": {cost: 22.00, unit: "LF"},
	"wood-fence":       {cost: 28.00, unit: "LF"},
	"security-fence":   {cost: 45.00, unit: "LF"},
	"masonry-wall":     {cost: 85.00, unit: "LF"},
	"gate-manual":      {cost: 1500, unit: "EA"},
	"gate-electric":    {cost: 8500, unit: "EA"},

	// Lighting
	"pole-light":    {cost: 3500, unit: "EA"},
	"bollard-light": {cost: 850, unit: "EA"},

	// Utilities
	"septic-system":     {cost: 15000, unit: "EA"},
	"water-well":        {cost: 12000, unit: "EA"},
	"irrigation-system": {cost: 1.25, unit: "SF"},
	"detention-pond":    {cost: 45000, unit: "LS"},

	// Signage
	"pylon-sign":    {cost: 25000, unit: "EA"},
	"monument-sign": {cost: 15000, unit: "EA"},

	// Landscaping
	"landscaping-basic":        {cost: 2.50, unit: "SF"},
	"landscaping-professional": {cost: 6.00, unit: "SF"},

	// Structures
	"detached-garage": {cost: 65.00, unit: "SF"},
	"carport":         {cost: 35.00, unit: "SF"},
	"storage-shed":    {cost: 45.00, unit: "SF"},
	"trash-enclosure": {cost: 5500, unit: "EA"},
}

// Default economic life in years by site improvement type.
var siteImprovementLives = map[string]int{
	"asphalt-paving":           20,
	"concrete-paving":          30,
	"gravel-surface":           10,
	"heavy-duty-paving":        25,
	"sidewalk":                 30,
	"curbing":                  30,
	"striping":                 5,
	"chain-link-fence":         25,
	"wood-fence":               15,
	"security-fence":           25,
	"masonry-wall":             40,
	"gate-manual":              20,
	"gate-electric":            15,
	"pole-light":               20,
	"bollard-light":            15,
	"septic-system":            30,
	"water-well":               30,
	"irrigation-system":        20,
	"detention-pond":           40,
	"pylon-sign":               15,
	"monument-sign":            20,
	"landscaping-basic":        15,
	"landscaping-professional": 20,
	"detached-garage":          40,
	"carport":                  25,
	"storage-shed":             25,
	"trash-enclosure":          20,
}
