// Package auth persists user credentials in the system keyring. Anonymous
// API tokens live in the file cache instead; the keyring only holds
// account-bound secrets like the media-user token that unlocks lyrics.
package auth

import (
	"github.com/cadence-dl/cadence/constant"
	"github.com/zalando/go-keyring"
)

// SetMediaUserToken persists a vendor's media-user token to the system keyring.
func SetMediaUserToken(vendor, token string) error {
	return keyring.Set(constant.Cadence, vendor+"-media-user-token", token)
}

// MediaUserToken retrieves a vendor's media-user token from the system keyring.
func MediaUserToken(vendor string) (string, error) {
	return keyring.Get(constant.Cadence, vendor+"-media-user-token")
}

// DeleteMediaUserToken removes a vendor's media-user token from the system keyring.
func DeleteMediaUserToken(vendor string) error {
	return keyring.Delete(constant.Cadence, vendor+"-media-user-token")
}
