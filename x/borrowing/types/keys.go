package types

import (
	"encoding/binary"
)

const (
	ModuleName = "borrowing"

	StoreKey = ModuleName

	RouterKey = ModuleName

	QuerierRoute = ModuleName

	MemStoreKey = "mem_borrowing"
)

// Store key prefixes. Params is the instance-scope singleton; the rest are
// keyed collections.
var (
	ParamsKey                   = []byte{0x00}
	LoanPrefix                  = []byte{0x01}
	NextLoanIDKey               = []byte{0x02}
	WhitelistedCollateralPrefix = []byte{0x03}
	VaultPausePrefix            = []byte{0x04}
)

func LoanKey(loanID uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, loanID)
	return append(append([]byte{}, LoanPrefix...), buf...)
}

func WhitelistedCollateralKey(denom string) []byte {
	return append(append([]byte{}, WhitelistedCollateralPrefix...), []byte(denom)...)
}

func VaultPauseKey(denom string) []byte {
	return append(append([]byte{}, VaultPausePrefix...), []byte(denom)...)
}
