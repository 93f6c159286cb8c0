package domain

const (
	PackageTypeStandard = "standard"
	PackageTypePremium  = "premium"
)

// Catalog themes shown on the landing page.
const (
	ThemeImmune   = "면역건강구독"
	ThemeDiet     = "다이어트구독"
	ThemeVitality = "활력건강구독"
)

// SubscriptionDiscountPercent is the fixed discount applied to a package's
// list price to produce the recurring subscription price. Business rule,
// not configurable per package.
const SubscriptionDiscountPercent = 10

// Site setting keys consumed by the landing page.
const (
	SettingHeroTitle    = "hero_title"
	SettingHeroSubtitle = "hero_subtitle"
	SettingContactPhone = "contact_phone"
	SettingContactEmail = "contact_email"
	SettingKakaoChannel = "kakao_channel_url"
)
