package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers the x/borrowing Msg types on the provided
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateLoan{}, "borrowing/CreateLoan", nil)
	cdc.RegisterConcrete(&MsgRepayLoan{}, "borrowing/RepayLoan", nil)
	cdc.RegisterConcrete(&MsgLiquidate{}, "borrowing/Liquidate", nil)
	cdc.RegisterConcrete(&MsgWhitelistCollateral{}, "borrowing/WhitelistCollateral", nil)
	cdc.RegisterConcrete(&MsgSetGlobalPause{}, "borrowing/SetGlobalPause", nil)
	cdc.RegisterConcrete(&MsgSetVaultPause{}, "borrowing/SetVaultPause", nil)
}

// RegisterInterfaces registers the x/borrowing interface types with the
// interface registry. This module uses the legacy amino codec for message
// serialization; proto-based registration is not used, so this is a no-op.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	_ = registry
}

var (
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterCodec(Amino)
	Amino.Seal()
}
