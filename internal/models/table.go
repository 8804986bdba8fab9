package models

// Table ids are supplied by the caller; Number is what guests book against.
type Table struct {
	ID       int  `gorm:"primaryKey;autoIncrement:false" json:"id" dynamodbav:"id"`
	Number   int  `gorm:"index;not null" json:"number" dynamodbav:"number"`
	Places   int  `gorm:"not null" json:"places" dynamodbav:"places"`
	IsVip    bool `gorm:"not null" json:"isVip" dynamodbav:"isVip"`
	MinOrder *int `json:"minOrder,omitempty" dynamodbav:"minOrder,omitempty"`
}
