package models

type UserRole string
type HostelStatus string
type BillingPeriod string
type MealType string
type ProofStatus string
type TargetAudience string

const (
	UserRoleStudent UserRole = "student"
	UserRoleStaff   UserRole = "staff"
	UserRoleAdmin   UserRole = "admin"

	HostelStatusHosteller    HostelStatus = "hosteller"
	HostelStatusNonHosteller HostelStatus = "non_hosteller"

	BillingPeriodMonthly   BillingPeriod = "monthly"
	BillingPeriodQuarterly BillingPeriod = "quarterly"
	BillingPeriodYearly    BillingPeriod = "yearly"

	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"

	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"

	TargetAllUsers          TargetAudience = "all"
	TargetHostellers        TargetAudience = "hostellers"
	TargetNonHostellers     TargetAudience = "non_hostellers"
	TargetActiveSubscribers TargetAudience = "active_subscribers"
)

// AllMealTypes — порядок фиксирован: так блюда выводятся в меню и в CSV.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// IsStaffRole — staff и admin имеют доступ к админ-панели.
func IsStaffRole(role UserRole) bool {
	return role == UserRoleStaff || role == UserRoleAdmin
}
