package services

import "math/rand"

const confirmCodeLength = 6

// generateConfirmCode returns a 6-digit numeric code. Not cryptographically
// strong; it only proves possession of the mailbox the code was sent to.
func generateConfirmCode() string {
	buf := make([]byte, confirmCodeLength)
	for i := range buf {
		buf[i] = byte('0' + rand.Intn(10))
	}
	return string(buf)
}
