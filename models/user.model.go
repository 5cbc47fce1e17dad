package models

import "time"

// SubscriptionTier enum values
const (
	TierFree      = "free"
	TierStandard  = "standard"
	TierPremium   = "premium"
	TierUnlimited = "unlimited"
)

// SubscriptionTiers lists every accepted tier, cheapest first
var SubscriptionTiers = []string{TierFree, TierStandard, TierPremium, TierUnlimited}

// IsValidTier reports whether tier is one of SubscriptionTiers
func IsValidTier(tier string) bool {
	for _, t := range SubscriptionTiers {
		if t == tier {
			return true
		}
	}
	return false
}

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"uniqueIndex;not null;size:64" json:"username"`
	Email              string    `gorm:"not null;size:255" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	SubscriptionTier   string    `gorm:"type:varchar(20);default:'free'" json:"subscriptionTier"`
	HasUnlimitedAccess bool      `gorm:"default:false" json:"hasUnlimitedAccess"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"-"`
}
