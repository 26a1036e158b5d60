package muusdk

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token issued on login or registration.
type AuthResponse struct {
	Token string `json:"token"`
}

// ============================================================================
// Animal Types
// ============================================================================

// Animal is a registered animal on a farm.
type Animal struct {
	ID            int64    `json:"id"`
	Tag           string   `json:"tag"`
	Breed         string   `json:"breed"`
	Weight        float64  `json:"weight"`
	Age           int      `json:"age"`
	Status        string   `json:"status"`
	FeedLevel     *float64 `json:"feedLevel"`
	OwnerUsername string   `json:"ownerUsername"`
	StableID      int64    `json:"stableId"`
}

// AnimalRequest is the payload for creating or updating an animal.
type AnimalRequest struct {
	Tag       string   `json:"tag"`
	Breed     string   `json:"breed"`
	Weight    float64  `json:"weight"`
	Age       int      `json:"age"`
	Status    string   `json:"status"`
	FeedLevel *float64 `json:"feedLevel,omitempty"`
	StableID  int64    `json:"stableId"`
}

// ============================================================================
// Stable Types
// ============================================================================

// Stable is a barn or enclosure holding animals.
type Stable struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location"`
	Capacity      int    `json:"capacity"`
	OwnerUsername string `json:"ownerUsername"`
	Status        string `json:"status,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// CreateStableRequest is the payload for POST /stables.
type CreateStableRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthRecord is a veterinary event for an animal. Penalty is the score
// deduction this record applies to the animal's condition projection.
type HealthRecord struct {
	ID            int64   `json:"id"`
	AnimalID      int64   `json:"animalId"`
	Diagnosis     string  `json:"diagnosis"`
	Treatment     string  `json:"treatment"`
	Vaccine       string  `json:"vaccine"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Penalty       float64 `json:"penalty"`
	Notes         string  `json:"notes"`
	OwnerUsername string  `json:"ownerUsername"`
}

// CreateHealthRecordRequest is the payload for POST /health.
type CreateHealthRecordRequest struct {
	AnimalID  int64   `json:"animalId"`
	Diagnosis string  `json:"diagnosis"`
	Treatment string  `json:"treatment"`
	Vaccine   string  `json:"vaccine"`
	Date      string  `json:"date"`
	Penalty   float64 `json:"penalty"`
	Notes     string  `json:"notes"`
}

// UpdateHealthRecordRequest is the payload for PUT /health/{id}.
type UpdateHealthRecordRequest struct {
	Diagnosis string  `json:"diagnosis"`
	Treatment string  `json:"treatment"`
	Vaccine   string  `json:"vaccine"`
	Date      string  `json:"date"`
	Penalty   float64 `json:"penalty"`
	Notes     string  `json:"notes"`
}

// ============================================================================
// Production Types
// ============================================================================

// MilkRecord is one day's milk yield for an animal.
type MilkRecord struct {
	ID        int64   `json:"id"`
	AnimalID  int64   `json:"animalId"`
	Liters    float64 `json:"liters"`
	Date      string  `json:"date"` // YYYY-MM-DD
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// MilkRecordRequest is the payload for creating or updating a milk record.
type MilkRecordRequest struct {
	AnimalID int64   `json:"animalId"`
	Liters   float64 `json:"liters"`
	Date     string  `json:"date"`
}

// MilkSummary aggregates an animal's milk production.
type MilkSummary struct {
	AverageLiters *float64 `json:"averageLiters"`
	TotalLiters   *float64 `json:"totalLiters"`
}

// WeightRecord is one weigh-in for an animal.
type WeightRecord struct {
	ID        int64   `json:"id"`
	AnimalID  int64   `json:"animalId"`
	WeightKg  float64 `json:"weightKg"`
	Date      string  `json:"date"` // YYYY-MM-DD
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// WeightRecordRequest is the payload for creating or updating a weight
// record.
type WeightRecordRequest struct {
	AnimalID int64   `json:"animalId"`
	WeightKg float64 `json:"weightKg"`
	Date     string  `json:"date"`
}

// WeightSummary aggregates an animal's weight trend.
type WeightSummary struct {
	LastWeight *float64 `json:"lastWeight"`
	Gain7Days  *float64 `json:"gain7Days"`
	Gain30Days *float64 `json:"gain30Days"`
}

// AnimalAnalytics combines milk and weight aggregates for one animal.
type AnimalAnalytics struct {
	AnimalID           int64    `json:"animalId"`
	AverageMilk        *float64 `json:"averageMilk"`
	TotalMilk          *float64 `json:"totalMilk"`
	LastRecordedWeight *float64 `json:"lastRecordedWeight"`
	WeightGain7Days    *float64 `json:"weightGain7Days"`
	WeightGain30Days   *float64 `json:"weightGain30Days"`
}

// ============================================================================
// Campaign Types
// ============================================================================

// Campaign statuses.
const (
	CampaignPlanned   = "PLANNED"
	CampaignActive    = "ACTIVE"
	CampaignCompleted = "COMPLETED"
)

// Goal metrics.
const (
	MetricConversions = "CONVERSIONS"
	MetricClicks      = "CLICKS"
	MetricViews       = "VIEWS"
)

// Channel types.
const (
	ChannelSMS         = "SMS"
	ChannelWhatsApp    = "WHATSAPP"
	ChannelEmail       = "EMAIL"
	ChannelSocialMedia = "SOCIAL_MEDIA"
)

// Goal is a measurable target attached to a campaign.
type Goal struct {
	ID           int64   `json:"id"`
	Description  string  `json:"description"`
	Metric       string  `json:"metric"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
}

// Channel is a delivery channel attached to a campaign.
type Channel struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type"`
	Details *string `json:"details"`
}

// Campaign is a marketing campaign tied to a stable.
type Campaign struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      string    `json:"status"`
	Username    string    `json:"username"`
	StableID    int64     `json:"stableId"`
	Goals       []Goal    `json:"goals"`
	Channels    []Channel `json:"channels"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// CreateCampaignRequest is the payload for POST /campaigns.
type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
	StableID    int64  `json:"stableId"`
}

// UpdateCampaignStatusRequest is the payload for PATCH
// /campaigns/{id}/update-status.
type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}

// AddGoalRequest is the payload for PATCH /campaigns/{id}/add-goal.
type AddGoalRequest struct {
	Description  string  `json:"description"`
	Metric       string  `json:"metric"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
}

// AddChannelRequest is the payload for PATCH /campaigns/{id}/add-channel.
type AddChannelRequest struct {
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// ============================================================================
// Report Types
// ============================================================================

// AnimalFullReport is the consolidated per-animal report.
type AnimalFullReport struct {
	Animal    Animal          `json:"animal"`
	Analytics AnimalAnalytics `json:"analytics"`
}

// StableFullReport is the consolidated per-stable report.
type StableFullReport struct {
	Stable    Stable     `json:"stable"`
	Animals   []Animal   `json:"animals"`
	Campaigns []Campaign `json:"campaigns"`
	Note      string     `json:"note,omitempty"`
}

// ============================================================================
// Admin Types
// ============================================================================

// AdminStats are system-wide statistics for the admin dashboard.
type AdminStats struct {
	TotalUsers        int                 `json:"totalUsers"`
	ActiveUsers       int                 `json:"activeUsers"`
	TotalAnimals      int                 `json:"totalAnimals"`
	TotalStables      int                 `json:"totalStables"`
	NewUsersThisMonth int                 `json:"newUsersThisMonth"`
	SystemHealth      float64             `json:"systemHealth"`
	AnimalsByStatus   []AnimalStatusCount `json:"animalsByStatus"`
	TopUsers          []TopUser           `json:"topUsers"`
}

// AnimalStatusCount is one slice of the animals-by-status breakdown.
type AnimalStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TopUser is one row of the most-active-users breakdown.
type TopUser struct {
	Username     string `json:"username"`
	AnimalsCount int    `json:"animalsCount"`
	StablesCount int    `json:"stablesCount"`
}

// UserSubscription is a user's plan and limits.
type UserSubscription struct {
	Username     string `json:"username"`
	Plan         string `json:"plan"` // FREE, BASIC, PREMIUM, ENTERPRISE
	ExpiresAt    string `json:"expiresAt"`
	AnimalsLimit int    `json:"animalsLimit"`
	StablesLimit int    `json:"stablesLimit"`
}

// ============================================================================
// Assistant Types
// ============================================================================

// AssistantChatRequest is a question for the AI assistant, optionally
// scoped to an animal or stable.
type AssistantChatRequest struct {
	Question string `json:"question"`
	AnimalID int64  `json:"animalId,omitempty"`
	StableID int64  `json:"stableId,omitempty"`
}

// AssistantChatResponse is the assistant's answer.
type AssistantChatResponse struct {
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp,omitempty"`
}
