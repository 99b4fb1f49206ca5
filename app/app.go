package app

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"cosmossdk.io/x/upgrade"
	upgradekeeper "cosmossdk.io/x/upgrade/keeper"
	upgradetypes "cosmossdk.io/x/upgrade/types"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	nodeservice "github.com/cosmos/cosmos-sdk/client/grpc/node"
	"github.com/cosmos/cosmos-sdk/server/api"
	"github.com/cosmos/cosmos-sdk/server/config"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/cosmos-sdk/x/consensus"
	consensusparamkeeper "github.com/cosmos/cosmos-sdk/x/consensus/keeper"
	consensusparamtypes "github.com/cosmos/cosmos-sdk/x/consensus/types"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/cosmos/cosmos-sdk/x/staking"
	stakingkeeper "github.com/cosmos/cosmos-sdk/x/staking/keeper"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	dbm "github.com/cosmos/cosmos-db"
	abci "github.com/cometbft/cometbft/v2/abci/types"
	"github.com/cosmos/gogoproto/proto"
	txsigning "cosmossdk.io/x/tx/signing"

	// ShareHODL modules
	lendingmodule "github.com/sharehodl/sharehodl-blockchain/x/lending"
	lendingkeeper "github.com/sharehodl/sharehodl-blockchain/x/lending/keeper"
	lendingtypes "github.com/sharehodl/sharehodl-blockchain/x/lending/types"

	inheritancemodule "github.com/sharehodl/sharehodl-blockchain/x/inheritance"
	inheritancekeeper "github.com/sharehodl/sharehodl-blockchain/x/inheritance/keeper"
	inheritancetypes "github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"

	borrowingmodule "github.com/sharehodl/sharehodl-blockchain/x/borrowing"
	borrowingkeeper "github.com/sharehodl/sharehodl-blockchain/x/borrowing/keeper"
	borrowingtypes "github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"

	"github.com/sharehodl/sharehodl-blockchain/security"
)

const (
	Name = "sharehodl"

	// ShareHODL bech32 address prefixes
	Bech32PrefixAccAddr  = "hodl"
	Bech32PrefixAccPub   = "hodlpub"
	Bech32PrefixValAddr  = "hodlvaloper"
	Bech32PrefixValPub   = "hodlvaloperpub"
	Bech32PrefixConsAddr = "hodlvalcons"
	Bech32PrefixConsPub  = "hodlvalconspub"

	// ShareHODL bech32 hash prefixes (for tx and block hashes)
	Bech32PrefixTxHash    = "sharetx"
	Bech32PrefixBlockHash = "shareblock"
)

var (
	// DefaultNodeHome default home directories for the application daemon
	DefaultNodeHome string

	// module account permissions
	maccPerms = map[string][]string{
		authtypes.FeeCollectorName:     nil,
		stakingtypes.BondedPoolName:    {authtypes.Burner, authtypes.Staking},
		stakingtypes.NotBondedPoolName: {authtypes.Burner, authtypes.Staking},
		lendingtypes.ModuleName:        nil, // single-pool deposit/borrow escrow, no mint/burn
		inheritancetypes.ModuleName:    nil, // vault escrow, no mint/burn
		borrowingtypes.ModuleName:      nil, // escrows collateral and principal, no mint/burn
	}
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

// ShareHODLApp extends ABCI appplication for ShareHODL blockchain
type ShareHODLApp struct {
	*baseapp.BaseApp

	cdc               *codec.LegacyAmino
	appCodec          codec.Codec
	txConfig          client.TxConfig
	interfaceRegistry types.InterfaceRegistry

	// keepers
	AccountKeeper         authkeeper.AccountKeeper
	BankKeeper            bankkeeper.Keeper
	StakingKeeper         *stakingkeeper.Keeper
	UpgradeKeeper         *upgradekeeper.Keeper
	ConsensusParamsKeeper consensusparamkeeper.Keeper

	// ShareHODL keepers
	LendingKeeper     *lendingkeeper.Keeper
	InheritanceKeeper *inheritancekeeper.Keeper
	BorrowingKeeper   *borrowingkeeper.Keeper

	SecurityAuditFramework *security.SecurityAuditFramework

	// module manager
	MM           *module.Manager
	BasicManager module.BasicManager
	configurator module.Configurator
}

// NewShareHODLApp returns a reference to an initialized ShareHODLApp.
func NewShareHODLApp(
	logger log.Logger,
	db dbm.DB,
	traceStore io.Writer,
	loadLatest bool,
	appOpts servertypes.AppOptions,
	baseAppOptions ...func(*baseapp.BaseApp),
) *ShareHODLApp {
	// Create address codecs for our chain's bech32 prefixes
	addressCodec := address.NewBech32Codec(Bech32PrefixAccAddr)
	validatorAddressCodec := address.NewBech32Codec(Bech32PrefixValAddr)

	// CRITICAL: Create InterfaceRegistry with proper address codecs.
	// This is required for tx simulation (gas estimation) and proper
	// address conversion in gRPC queries. Without this, CLI and Keplr
	// transactions fail with "InterfaceRegistry requires a proper address codec".
	signingOptions := txsigning.Options{
		FileResolver:          proto.HybridResolver,
		AddressCodec:          addressCodec,
		ValidatorAddressCodec: validatorAddressCodec,
	}
	interfaceRegistry, err := types.NewInterfaceRegistryWithOptions(types.InterfaceRegistryOptions{
		ProtoFiles:     proto.HybridResolver,
		SigningOptions: signingOptions,
	})
	if err != nil {
		panic(err)
	}

	appCodec := codec.NewProtoCodec(interfaceRegistry)
	legacyAmino := codec.NewLegacyAmino()

	// CRITICAL: SDK v0.54-alpha requires creating a SigningContext with proper
	// address codecs for signature verification to work. Without this, signature
	// verification fails with "unable to verify single signer signature".
	signingContext, err := txsigning.NewContext(signingOptions)
	if err != nil {
		panic(err)
	}

	txConfig, err := authtx.NewTxConfigWithOptions(appCodec, authtx.ConfigOptions{
		EnabledSignModes: authtx.DefaultSignModes,
		SigningContext:   signingContext,
	})
	if err != nil {
		panic(err)
	}

	std.RegisterLegacyAminoCodec(legacyAmino)
	std.RegisterInterfaces(interfaceRegistry)

	// basic manager - needs to be created early to register interfaces
	basicManager := module.NewBasicManager(
		auth.AppModuleBasic{},
		genutil.NewAppModuleBasic(nil),
		bank.AppModuleBasic{},
		staking.AppModuleBasic{},
		upgrade.AppModuleBasic{},
		consensus.AppModuleBasic{},
		lendingmodule.AppModuleBasic{},
		inheritancemodule.NewAppModuleBasic(appCodec),
		borrowingmodule.NewAppModuleBasic(appCodec),
	)

	basicManager.RegisterInterfaces(interfaceRegistry)

	// Explicitly register SDK module interfaces for gRPC gateway
	// CRITICAL: These registrations enable proper serialization of interface types
	// over REST API, which is required for Keplr wallet integration
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	stakingtypes.RegisterInterfaces(interfaceRegistry)

	// Register crypto key types for proper serialization
	interfaceRegistry.RegisterImplementations((*cryptotypes.PubKey)(nil),
		&ed25519.PubKey{},
		&secp256k1.PubKey{},
	)

	// CRITICAL: Register account interface implementations
	// This fixes "no registered implementations of type types.AccountI" error
	// that prevents Keplr from querying account information
	interfaceRegistry.RegisterImplementations((*authtypes.AccountI)(nil),
		&authtypes.BaseAccount{},
		&authtypes.ModuleAccount{},
	)

	bApp := baseapp.NewBaseApp(Name, logger, db, txConfig.TxDecoder(), baseAppOptions...)
	bApp.SetCommitMultiStoreTracer(traceStore)
	bApp.SetVersion(version.Version)
	bApp.SetInterfaceRegistry(interfaceRegistry)
	bApp.SetTxEncoder(txConfig.TxEncoder())

	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		stakingtypes.StoreKey,
		upgradetypes.StoreKey,
		consensusparamtypes.StoreKey,
		lendingtypes.StoreKey,
		inheritancetypes.StoreKey,
		borrowingtypes.StoreKey,
	)

	memKeys := storetypes.NewMemoryStoreKeys(
		lendingtypes.MemStoreKey,
		inheritancetypes.MemStoreKey,
		borrowingtypes.MemStoreKey,
	)

	app := &ShareHODLApp{
		BaseApp:           bApp,
		cdc:               legacyAmino,
		appCodec:          appCodec,
		txConfig:          txConfig,
		interfaceRegistry: interfaceRegistry,
	}

	// set the BaseApp's parameter store
	app.ConsensusParamsKeeper = consensusparamkeeper.NewKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[consensusparamtypes.StoreKey]),
		authtypes.NewModuleAddress("gov").String(),
		runtime.EventService{},
	)
	bApp.SetParamStore(app.ConsensusParamsKeeper.ParamsStore)

	// add keepers
	// CRITICAL: Use the SAME addressCodec instance that was used for InterfaceRegistry
	// and SigningContext. This ensures the ante handler's signature verification uses
	// the same codec instance. Different instances may cause verification failures.
	app.AccountKeeper = authkeeper.NewAccountKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		addressCodec,
		Bech32PrefixAccAddr,
		authtypes.NewModuleAddress("gov").String(),
	)

	app.BankKeeper = bankkeeper.NewBaseKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		app.AccountKeeper,
		map[string]bool{},
		authtypes.NewModuleAddress("gov").String(),
		logger,
	)

	// CRITICAL: Use the SAME validatorAddressCodec instance that was used for
	// InterfaceRegistry and SigningContext to ensure consistency.
	app.StakingKeeper = stakingkeeper.NewKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[stakingtypes.StoreKey]),
		app.AccountKeeper,
		app.BankKeeper,
		authtypes.NewModuleAddress("gov").String(),
		validatorAddressCodec,
		address.NewBech32Codec(Bech32PrefixConsAddr),
	)

	app.UpgradeKeeper = upgradekeeper.NewKeeper(
		map[int64]bool{},
		runtime.NewKVStoreService(keys[upgradetypes.StoreKey]),
		appCodec,
		DefaultNodeHome,
		app.BaseApp,
		authtypes.NewModuleAddress("gov").String(),
	)

	// Initialize Lending keeper (single-pool deposit/borrow accounting; no
	// staking-backed trust ceiling, so no staking keeper is wired in here)
	app.LendingKeeper = lendingkeeper.NewKeeper(
		keys[lendingtypes.StoreKey],
		memKeys[lendingtypes.MemStoreKey],
		app.BankKeeper,
		app.AccountKeeper,
	)

	// Initialize Inheritance keeper (beneficiary plans released by an admin
	// trigger and claimed with a secret claim code). No cross-module keeper coupling to lending or
	// borrowing: transfers into the vault and claims out of it are
	// operator-mediated bank transfers, never synchronous callbacks into
	// another module's keeper.
	app.InheritanceKeeper = inheritancekeeper.NewKeeper(
		app.cdc,
		keys[inheritancetypes.StoreKey],
		memKeys[inheritancetypes.MemStoreKey],
		app.AccountKeeper,
		app.BankKeeper,
		authtypes.NewModuleAddress("gov").String(),
	)

	// Initialize Borrowing Vault keeper (collateralized loans, independent
	// of the lending pool and inheritance vault)
	app.BorrowingKeeper = borrowingkeeper.NewKeeper(
		keys[borrowingtypes.StoreKey],
		memKeys[borrowingtypes.MemStoreKey],
		app.BankKeeper,
		app.AccountKeeper,
	)

	// Security audit framework: periodically checks each vault's own ledger
	// against what it actually escrowed in its module account.
	app.SecurityAuditFramework = security.NewSecurityAuditFramework()
	app.SecurityAuditFramework.RegisterAuditor(security.NewVaultSolvencyAuditor(app.vaultSolvencySnapshots))

	/****  Module Manager ****/
	app.MM = module.NewManager(
		genutil.NewAppModule(
			app.AccountKeeper,
			app.StakingKeeper,
			app,
			txConfig,
		),
		auth.NewAppModule(appCodec, app.AccountKeeper, nil, nil),
		bank.NewAppModule(appCodec, app.BankKeeper, app.AccountKeeper, nil),
		staking.NewAppModule(appCodec, app.StakingKeeper, app.AccountKeeper, app.BankKeeper, nil),
		upgrade.NewAppModule(app.UpgradeKeeper, app.AccountKeeper.AddressCodec()),
		consensus.NewAppModule(appCodec, app.ConsensusParamsKeeper),
		lendingmodule.NewAppModule(appCodec, *app.LendingKeeper, app.BankKeeper, app.AccountKeeper),
		inheritancemodule.NewAppModule(appCodec, *app.InheritanceKeeper, app.AccountKeeper, app.BankKeeper),
		borrowingmodule.NewAppModule(appCodec, *app.BorrowingKeeper, app.BankKeeper, app.AccountKeeper),
	)

	app.MM.SetOrderBeginBlockers(
		upgradetypes.ModuleName,
		stakingtypes.ModuleName,
		lendingtypes.ModuleName,
		inheritancetypes.ModuleName,
		borrowingtypes.ModuleName,
	)

	app.MM.SetOrderEndBlockers(
		stakingtypes.ModuleName,
		lendingtypes.ModuleName,
		inheritancetypes.ModuleName, // EndBlock is a no-op: claim eligibility is checked inside ClaimPlan
		borrowingtypes.ModuleName,
	)

	genesisModuleOrder := []string{
		authtypes.ModuleName,
		banktypes.ModuleName,
		stakingtypes.ModuleName,
		upgradetypes.ModuleName,
		genutiltypes.ModuleName,
		consensusparamtypes.ModuleName,
		lendingtypes.ModuleName,
		inheritancetypes.ModuleName,
		borrowingtypes.ModuleName,
	}

	app.MM.SetOrderInitGenesis(genesisModuleOrder...)
	app.MM.SetOrderExportGenesis(genesisModuleOrder...)

	// initialize stores
	app.MountKVStores(keys)
	app.MountMemoryStores(memKeys)

	// initialize BaseApp
	app.SetInitChainer(app.InitChainer)
	app.SetBeginBlocker(app.BeginBlocker)
	app.SetEndBlocker(app.EndBlocker)

	// configure ante handler
	anteHandler, err := NewAnteHandler(AnteHandlerOptions{
		AccountKeeper:   app.AccountKeeper,
		BankKeeper:      app.BankKeeper,
		SignModeHandler: txConfig.SignModeHandler(),
	})
	if err != nil {
		panic(err)
	}
	app.SetAnteHandler(anteHandler)

	// module configurator
	app.configurator = module.NewConfigurator(app.appCodec, app.MsgServiceRouter(), app.GRPCQueryRouter())
	app.MM.RegisterServices(app.configurator)

	// assign the basic manager that was created earlier
	app.BasicManager = basicManager

	if loadLatest {
		if err := app.LoadLatestVersion(); err != nil {
			panic(err)
		}
	}

	return app
}

// Name returns the name of the App
func (app *ShareHODLApp) Name() string { return app.BaseApp.Name() }

// BeginBlocker application updates every begin block
func (app *ShareHODLApp) BeginBlocker(ctx sdk.Context) (sdk.BeginBlock, error) {
	return app.MM.BeginBlock(ctx)
}

// EndBlocker application updates every end block
func (app *ShareHODLApp) EndBlocker(ctx sdk.Context) (sdk.EndBlock, error) {
	// Solvency checks read every plan/loan in state, so they run on a
	// cadence rather than every block.
	if ctx.BlockHeight()%100 == 0 {
		app.runSecurityAudit(ctx)
	}
	return app.MM.EndBlock(ctx)
}

// runSecurityAudit runs the registered auditors and logs any finding at
// critical or high risk. Lower-risk findings are retained on the framework
// and available via GetFindings/GetMetrics but are not logged every cycle.
func (app *ShareHODLApp) runSecurityAudit(ctx sdk.Context) {
	report, err := app.SecurityAuditFramework.RunComprehensiveAudit(ctx)
	if err != nil {
		app.Logger().Error("security audit failed", "error", err)
		return
	}
	for _, finding := range report.Findings {
		if finding.RiskLevel == security.RiskCritical || finding.RiskLevel == security.RiskHigh {
			app.Logger().Error("security finding",
				"auditor", finding.AuditorName,
				"title", finding.Title,
				"description", finding.Description,
			)
		}
	}
}

// vaultSolvencySnapshots computes each module's tracked liability against
// its actual escrowed bank balance, for the VaultSolvencyAuditor.
func (app *ShareHODLApp) vaultSolvencySnapshots(ctx sdk.Context) []security.VaultSolvencySnapshot {
	lendingAddr := app.AccountKeeper.GetModuleAddress(lendingtypes.ModuleName)
	pool := app.LendingKeeper.GetPool(ctx)
	lendingBalance := app.BankKeeper.GetBalance(ctx, lendingAddr, lendingtypes.Denom).Amount.Uint64()

	inheritanceAddr := app.AccountKeeper.GetModuleAddress(inheritancetypes.ModuleName)
	var inheritanceLiability uint64
	for _, plan := range app.InheritanceKeeper.GetAllPlans(ctx) {
		if plan.IsActive {
			inheritanceLiability += plan.TotalAmount
		}
	}
	inheritanceBalance := app.BankKeeper.GetBalance(ctx, inheritanceAddr, inheritancetypes.Denom).Amount.Uint64()

	snapshots := []security.VaultSolvencySnapshot{
		{
			ModuleName:      lendingtypes.ModuleName,
			LedgerLiability: pool.AvailableLiquidity(),
			EscrowBalance:   lendingBalance,
		},
		{
			ModuleName:      inheritancetypes.ModuleName,
			LedgerLiability: inheritanceLiability,
			EscrowBalance:   inheritanceBalance,
		},
	}

	borrowingAddr := app.AccountKeeper.GetModuleAddress(borrowingtypes.ModuleName)
	collateralByDenom := make(map[string]uint64)
	for _, loan := range app.BorrowingKeeper.GetAllLoans(ctx) {
		if loan.IsActive {
			collateralByDenom[loan.CollateralDenom] += loan.CollateralAmount
		}
	}
	for denom, liability := range collateralByDenom {
		snapshots = append(snapshots, security.VaultSolvencySnapshot{
			ModuleName:      borrowingtypes.ModuleName + ":" + denom,
			LedgerLiability: liability,
			EscrowBalance:   app.BankKeeper.GetBalance(ctx, borrowingAddr, denom).Amount.Uint64(),
		})
	}

	return snapshots
}

// InitChainer application update at chain initialization
func (app *ShareHODLApp) InitChainer(ctx sdk.Context, req *abci.InitChainRequest) (*abci.InitChainResponse, error) {
	var genesisState GenesisState
	if err := json.Unmarshal(req.AppStateBytes, &genesisState); err != nil {
		panic(err)
	}
	app.UpgradeKeeper.SetModuleVersionMap(ctx, app.MM.GetVersionMap())
	return app.MM.InitGenesis(ctx, app.appCodec, genesisState)
}

// LoadHeight loads a particular height
func (app *ShareHODLApp) LoadHeight(height int64) error {
	return app.LoadVersion(height)
}

// ExportAppStateAndValidators exports the state of the application for a genesis
// file.
func (app *ShareHODLApp) ExportAppStateAndValidators(
	forZeroHeight bool, jailAllowedAddrs, modulesToExport []string,
) (servertypes.ExportedApp, error) {
	ctx := app.NewContext(true)
	height := app.LastBlockHeight() + 1
	if forZeroHeight {
		height = 0
	}

	genState, err := app.MM.ExportGenesis(ctx, app.appCodec)
	if err != nil {
		return servertypes.ExportedApp{}, err
	}

	appState, err := json.MarshalIndent(genState, "", "  ")
	if err != nil {
		return servertypes.ExportedApp{}, err
	}

	validators, err := staking.WriteValidators(ctx, app.StakingKeeper)
	return servertypes.ExportedApp{
		AppState:        appState,
		Validators:      validators,
		Height:          height,
		ConsensusParams: app.BaseApp.GetConsensusParams(ctx),
	}, err
}

// RegisterAPIRoutes registers all application module routes with the provided
// API server.
func (app *ShareHODLApp) RegisterAPIRoutes(apiSvr *api.Server, apiConfig config.APIConfig) {
	clientCtx := apiSvr.ClientCtx
	// CRITICAL: Update client context with app's interface registry for proper type resolution
	// This ensures gRPC gateway can properly serialize interface types (AccountI, etc.)
	// which is required for Keplr wallet to query account information
	clientCtx = clientCtx.WithInterfaceRegistry(app.interfaceRegistry).
		WithCodec(app.appCodec).
		WithTxConfig(app.txConfig)

	// Register gRPC gateway routes with updated client context
	app.BasicManager.RegisterGRPCGatewayRoutes(clientCtx, apiSvr.GRPCGatewayRouter)

	// CRITICAL: Register tx service gRPC gateway routes for REST API
	// This enables /cosmos/tx/v1beta1/txs (broadcast) and /cosmos/tx/v1beta1/simulate endpoints
	// Without this, Keplr wallet cannot broadcast transactions via REST API
	authtx.RegisterGRPCGatewayRoutes(clientCtx, apiSvr.GRPCGatewayRouter)
}

// RegisterNodeService implements the Application.RegisterNodeService method.
func (app *ShareHODLApp) RegisterNodeService(clientCtx client.Context, cfg config.Config) {
	nodeservice.RegisterNodeService(clientCtx, app.GRPCQueryRouter(), cfg)
}

// RegisterTendermintService implements the Application.RegisterTendermintService method.
func (app *ShareHODLApp) RegisterTendermintService(clientCtx client.Context) {
	// This method is required by the Application interface but may be deprecated
	// For CometBFT v2, this might be handled differently
}

// RegisterTxService implements the Application.RegisterTxService method.
func (app *ShareHODLApp) RegisterTxService(clientCtx client.Context) {
	authtx.RegisterTxService(app.BaseApp.GRPCQueryRouter(), clientCtx, app.BaseApp.Simulate, app.interfaceRegistry)
}

// GetTxConfig implements the TestingApp interface.
func (app *ShareHODLApp) GetTxConfig() client.TxConfig {
	return app.txConfig
}

// DefaultGenesis returns a default genesis from the registered AppModuleBasic's.
func (app *ShareHODLApp) DefaultGenesis() map[string]json.RawMessage {
	return app.BasicManager.DefaultGenesis(app.appCodec)
}

// Configurator implements the TestingApp interface.
func (app *ShareHODLApp) Configurator() module.Configurator {
	return app.configurator
}

// GenesisState - The genesis state of the blockchain is represented here as a map of raw json
// messages keyed by a string module name.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	return GenesisState{}
}

// MakeEncodingConfig creates an EncodingConfig for sharehodl.
func MakeEncodingConfig() EncodingConfig {
	return MakeTestEncodingConfig()
}

// ModuleBasics defines the module BasicManager is in charge of setting up basic,
// non-dependant module elements, such as codec registration and genesis verification.
var ModuleBasics = module.NewBasicManager(
	auth.AppModuleBasic{},
	genutil.NewAppModuleBasic(nil),
	bank.AppModuleBasic{},
	staking.AppModuleBasic{},
	upgrade.AppModuleBasic{},
	consensus.AppModuleBasic{},
	lendingmodule.AppModuleBasic{},
	inheritancemodule.NewAppModuleBasic(nil),
	borrowingmodule.NewAppModuleBasic(nil),
)

// AnteHandlerOptions are the options required for constructing a default SDK AnteHandler.
type AnteHandlerOptions struct {
	AccountKeeper   authkeeper.AccountKeeper
	BankKeeper      bankkeeper.Keeper
	SignModeHandler *txsigning.HandlerMap
}

// NewAnteHandler returns an AnteHandler that checks and increments sequence
// numbers, checks signatures & account numbers, and deducts fees from the
// first signer.
func NewAnteHandler(options AnteHandlerOptions) (sdk.AnteHandler, error) {
	return sdk.ChainAnteDecorators(
		ante.NewSetUpContextDecorator(),
		ante.NewExtensionOptionsDecorator(nil),
		ante.NewValidateBasicDecorator(),
		ante.NewTxTimeoutHeightDecorator(),
		ante.NewValidateMemoDecorator(options.AccountKeeper),
		ante.NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
		ante.NewDeductFeeDecorator(
			options.AccountKeeper,
			options.BankKeeper,
			nil, // feegrant keeper
			nil, // txFeeChecker
		),
		ante.NewSetPubKeyDecorator(options.AccountKeeper),
		ante.NewValidateSigCountDecorator(options.AccountKeeper),
		ante.NewSigGasConsumeDecorator(options.AccountKeeper, ante.DefaultSigVerificationGasConsumer),
		ante.NewSigVerificationDecorator(options.AccountKeeper, options.SignModeHandler),
		ante.NewIncrementSequenceDecorator(options.AccountKeeper),
	), nil
}
