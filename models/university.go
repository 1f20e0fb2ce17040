package models

type University struct {
	UniversityID   string `gorm:"column:university_id;type:uuid;default:gen_random_uuid();primaryKey" json:"university_id"`
	UniversityName string `gorm:"column:university_name;not null;uniqueIndex" json:"university_name"`
	UniversityLogo string `gorm:"column:university_logo" json:"university_logo"`
	Domain         string `gorm:"column:domain" json:"domain"`

	// Filled by listing queries, not stored.
	ReviewNum int64 `gorm:"-:migration;->" json:"review_num"`
}

func (University) TableName() string { return "universities" }

// UniversityRequest is a user-requested university awaiting addition, voted
// on per browser via an anonymous cookie token.
type UniversityRequest struct {
	UniversityID   string `gorm:"column:university_id;type:uuid;default:gen_random_uuid();primaryKey" json:"university_id"`
	UniversityName string `gorm:"column:university_name;not null" json:"university_name"`
	TotalVotes     int64  `gorm:"column:total_votes;not null;default:0" json:"total_votes"`

	UserToken *string `gorm:"-:migration;->" json:"user_token"`
}

func (UniversityRequest) TableName() string { return "university_requests" }

// UserUniversityRequest dedupes university-request votes per browser token.
type UserUniversityRequest struct {
	UniversityID string `gorm:"column:university_id;type:uuid;primaryKey" json:"university_id"`
	UserToken    string `gorm:"column:user_token;primaryKey" json:"user_token"`
}

func (UserUniversityRequest) TableName() string { return "user_university_requests" }
