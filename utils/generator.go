package utils

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/gambosports/gambo_sports/models"
	"gorm.io/gorm"
)

const referenceCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueBookingReference returns a "GB-XXXXXXXX" code not yet held
// by any booking.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "GB-" + string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

var avatarStyles = []string{"adventurer", "avataaars", "bottts", "jdenticon", "identicon"}

// GenerateCoachAvatarURL derives a stable placeholder avatar for coaches
// created without an image. The style pick is a function of the name, so the
// same coach always gets the same avatar.
func GenerateCoachAvatarURL(name string) string {
	nameHash := 0
	for _, r := range name {
		nameHash += int(r)
	}
	style := avatarStyles[nameHash%len(avatarStyles)]
	seed := url.QueryEscape(strings.ReplaceAll(name, " ", ""))
	return fmt.Sprintf("https://avatars.dicebear.com/api/%s/%s.svg", style, seed)
}
