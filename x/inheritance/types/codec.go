package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers the x/inheritance Msg types on the provided
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeAdmin{}, "inheritance/InitializeAdmin", nil)
	cdc.RegisterConcrete(&MsgCreatePlan{}, "inheritance/CreatePlan", nil)
	cdc.RegisterConcrete(&MsgAddBeneficiary{}, "inheritance/AddBeneficiary", nil)
	cdc.RegisterConcrete(&MsgRemoveBeneficiary{}, "inheritance/RemoveBeneficiary", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "inheritance/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "inheritance/Withdraw", nil)
	cdc.RegisterConcrete(&MsgSetLendable{}, "inheritance/SetLendable", nil)
	cdc.RegisterConcrete(&MsgDeactivatePlan{}, "inheritance/DeactivatePlan", nil)
	cdc.RegisterConcrete(&MsgTriggerInheritance{}, "inheritance/TriggerInheritance", nil)
	cdc.RegisterConcrete(&MsgRecallLoan{}, "inheritance/RecallLoan", nil)
	cdc.RegisterConcrete(&MsgLiquidationFallback{}, "inheritance/LiquidationFallback", nil)
	cdc.RegisterConcrete(&MsgClaimPlan{}, "inheritance/ClaimPlan", nil)
	cdc.RegisterConcrete(&MsgSubmitKyc{}, "inheritance/SubmitKyc", nil)
	cdc.RegisterConcrete(&MsgApproveKyc{}, "inheritance/ApproveKyc", nil)
	cdc.RegisterConcrete(&MsgRejectKyc{}, "inheritance/RejectKyc", nil)
	cdc.RegisterConcrete(&MsgUpgrade{}, "inheritance/Upgrade", nil)
	cdc.RegisterConcrete(&MsgMigrate{}, "inheritance/Migrate", nil)
}

// RegisterInterfaces registers the x/inheritance interface types with the
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
