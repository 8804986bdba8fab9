package models

type Reservation struct {
	ID            string `gorm:"primaryKey;size:36" json:"id" dynamodbav:"id"`
	TableNumber   int    `gorm:"index:idx_reservation_slot;not null" json:"tableNumber" dynamodbav:"tableNumber"`
	ClientName    string `gorm:"size:255;not null" json:"clientName" dynamodbav:"clientName"`
	PhoneNumber   string `gorm:"size:50;not null" json:"phoneNumber" dynamodbav:"phoneNumber"`
	Date          string `gorm:"index:idx_reservation_slot;size:32;not null" json:"date" dynamodbav:"date"`
	SlotTimeStart string `gorm:"size:5;not null" json:"slotTimeStart" dynamodbav:"slotTimeStart"`
	SlotTimeEnd   string `gorm:"size:5;not null" json:"slotTimeEnd" dynamodbav:"slotTimeEnd"`
}
