package model

import "time"

// InitialCreditBalance is granted once when a profile is first created.
const InitialCreditBalance = 10

// UserProfile is created on first sign-in and never overwritten afterwards.
type UserProfile struct {
	UID           string    `json:"id" firestore:"id" gorm:"column:uid;primaryKey;size:128"`
	Email         string    `json:"email" firestore:"email" gorm:"column:email;size:255"`
	DisplayName   string    `json:"displayName" firestore:"displayName" gorm:"column:display_name;size:255"`
	PhotoURL      string    `json:"photoURL" firestore:"photoURL" gorm:"column:photo_url;size:512"`
	CreditBalance int64     `json:"creditBalance" firestore:"creditBalance" gorm:"column:credit_balance;not null;default:0"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp" gorm:"autoCreateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
