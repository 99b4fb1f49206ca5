package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers the x/lending Msg types on the provided LegacyAmino
// codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "lending/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "lending/Withdraw", nil)
	cdc.RegisterConcrete(&MsgPriorityWithdraw{}, "lending/PriorityWithdraw", nil)
	cdc.RegisterConcrete(&MsgBorrow{}, "lending/Borrow", nil)
	cdc.RegisterConcrete(&MsgRepay{}, "lending/Repay", nil)
	cdc.RegisterConcrete(&MsgWhitelistToken{}, "lending/WhitelistToken", nil)
	cdc.RegisterConcrete(&MsgUpdatePoolParams{}, "lending/UpdatePoolParams", nil)
}

// RegisterInterfaces registers the x/lending interface types with the
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
