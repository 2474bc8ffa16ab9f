package models

type Invite struct {
	BaseModel
	InviterID  string `gorm:"not null;index;type:varchar(32)" json:"inviter_id"`
	InvitedID  string `gorm:"type:varchar(32)" json:"invited_id"`
	InviteCode string `gorm:"uniqueIndex;type:varchar(64)" json:"invite_code"`

	Inviter *User `gorm:"foreignKey:InviterID" json:"-"`
}
