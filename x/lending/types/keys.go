package types

import (
	"encoding/binary"
)

const (
	ModuleName = "lending"

	StoreKey = ModuleName

	RouterKey = ModuleName

	QuerierRoute = ModuleName

	MemStoreKey = "mem_lending"
)

// Store key prefixes. Pool/Params are instance-scope singletons; the rest
// are keyed collections.
var (
	PoolKey                     = []byte{0x00}
	LoanByBorrowerPrefix        = []byte{0x01}
	LoanByIDPrefix              = []byte{0x02}
	SharesPrefix                = []byte{0x03}
	NextLoanIDKey               = []byte{0x04}
	WhitelistedCollateralPrefix = []byte{0x05}
	PoolParamsKey                = []byte{0x06}
)

func LoanByBorrowerKey(borrower string) []byte {
	return append(append([]byte{}, LoanByBorrowerPrefix...), []byte(borrower)...)
}

func LoanByIDKey(loanID uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, loanID)
	return append(append([]byte{}, LoanByIDPrefix...), buf...)
}

func SharesKey(holder string) []byte {
	return append(append([]byte{}, SharesPrefix...), []byte(holder)...)
}

func WhitelistedCollateralKey(denom string) []byte {
	return append(append([]byte{}, WhitelistedCollateralPrefix...), []byte(denom)...)
}
