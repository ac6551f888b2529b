package uniswapv4

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	v4math "github.com/openlaunch/cca-go/uniswap_v4/math"
)

// Position manager batch actions.
const (
	ActionMintPosition byte = 0x02
	ActionSettlePair   byte = 0x0d
	ActionTakePair     byte = 0x11
)

var ErrPlanOutOfOrder = errors.New("plan builder called out of order")

type planState uint8

const (
	planStart planState = iota
	planFullRange
	planOneSided
	planComplete
)

// PlanOp is one batch action with its ABI-encoded parameter blob. Keeping
// opcode and payload in a single value makes the positional correspondence
// between the two structural rather than conventional.
type PlanOp struct {
	Action byte
	Params []byte
}

// Plan is the ordered action list handed to the position manager's batch
// executor.
type Plan struct {
	Ops []PlanOp
}

func (p Plan) Actions() []byte {
	actions := make([]byte, len(p.Ops))
	for i, op := range p.Ops {
		actions[i] = op.Action
	}
	return actions
}

func (p Plan) Params() [][]byte {
	params := make([][]byte, len(p.Ops))
	for i, op := range p.Ops {
		params[i] = op.Params
	}
	return params
}

// Encode produces the unlock data for ModifyLiquidities.
func (p Plan) Encode() ([]byte, error) {
	return unlockArgs.Pack(p.Actions(), p.Params())
}

var (
	addressType    = mustType("address", nil)
	int24Type      = mustType("int24", nil)
	uint256Type    = mustType("uint256", nil)
	uint128Type    = mustType("uint128", nil)
	bytesType      = mustType("bytes", nil)
	bytesArrayType = mustType("bytes[]", nil)

	poolKeyType = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "currency0", Type: "address"},
		{Name: "currency1", Type: "address"},
		{Name: "fee", Type: "uint24"},
		{Name: "tickSpacing", Type: "int24"},
		{Name: "hooks", Type: "address"},
	})

	mintArgs = abi.Arguments{
		{Type: poolKeyType},
		{Type: int24Type},
		{Type: int24Type},
		{Type: uint256Type},
		{Type: uint128Type},
		{Type: uint128Type},
		{Type: addressType},
		{Type: bytesType},
	}
	settlePairArgs = abi.Arguments{{Type: addressType}, {Type: addressType}}
	takePairArgs   = abi.Arguments{{Type: addressType}, {Type: addressType}, {Type: addressType}}
	unlockArgs     = abi.Arguments{{Type: bytesType}, {Type: bytesArrayType}}
)

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(err)
	}
	return typ
}

// poolKeyTuple mirrors the on-chain PoolKey struct for ABI packing.
type poolKeyTuple struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

func (k PoolKey) tuple() poolKeyTuple {
	return poolKeyTuple{
		Currency0:   k.Currency0,
		Currency1:   k.Currency1,
		Fee:         new(big.Int).SetUint64(uint64(k.Fee)),
		TickSpacing: big.NewInt(int64(k.TickSpacing)),
		Hooks:       k.Hooks,
	}
}

// Planner assembles the migration plan. Call MintFullRange, optionally
// MintOneSided, then Finish.
type Planner struct {
	base  BasePositionParams
	ops   []PlanOp
	state planState
}

func NewPlanner(base BasePositionParams) *Planner {
	return &Planner{base: base}
}

func (p *Planner) appendMint(tickLower, tickUpper int32, liquidity, amount0Max, amount1Max *big.Int, recipient common.Address) error {
	hookData := p.base.HookData
	if hookData == nil {
		hookData = []byte{}
	}
	params, err := mintArgs.Pack(
		p.base.PoolKey.tuple(),
		big.NewInt(int64(tickLower)),
		big.NewInt(int64(tickUpper)),
		liquidity,
		amount0Max,
		amount1Max,
		recipient,
		hookData,
	)
	if err != nil {
		return err
	}
	p.ops = append(p.ops, PlanOp{Action: ActionMintPosition, Params: params})
	return nil
}

// MintFullRange plans the primary position across the entire usable tick
// range, sized by the given liquidity. amount0Max and amount1Max cap the
// amounts the executor may pull when settling.
func (p *Planner) MintFullRange(liquidity, amount0Max, amount1Max *big.Int) error {
	if p.state != planStart {
		return ErrPlanOutOfOrder
	}
	spacing := p.base.PoolKey.TickSpacing
	err := p.appendMint(
		v4math.MinUsableTick(spacing),
		v4math.MaxUsableTick(spacing),
		liquidity,
		amount0Max,
		amount1Max,
		p.base.Recipient,
	)
	if err != nil {
		return err
	}
	p.state = planFullRange
	return nil
}

// MintOneSided plans a single-sided position consuming a surplus of one
// asset: a currency0 surplus goes strictly above the current price, a
// currency1 surplus strictly below. When the tick window collapses against a
// global bound, the liquidity rounds to zero, or the combined liquidity with
// the full-range position would exceed the per-tick ceiling, the surplus is
// left unplanned and the full-range plan stands alone. Reports whether a
// position was added.
func (p *Planner) MintOneSided(surplus0, surplus1 *big.Int) (bool, error) {
	if p.state != planFullRange {
		return false, ErrPlanOutOfOrder
	}
	planned := false
	if surplus0 != nil && surplus0.Sign() > 0 {
		ok, err := p.oneSided(surplus0, nil)
		if err != nil {
			return false, err
		}
		planned = planned || ok
	}
	if surplus1 != nil && surplus1.Sign() > 0 {
		ok, err := p.oneSided(nil, surplus1)
		if err != nil {
			return false, err
		}
		planned = planned || ok
	}
	if planned {
		p.state = planOneSided
	}
	return planned, nil
}

func (p *Planner) oneSided(amount0, amount1 *big.Int) (bool, error) {
	spacing := p.base.PoolKey.TickSpacing
	currentTick, err := v4math.TickAtSqrtPrice(p.base.SqrtPriceX96)
	if err != nil {
		return false, nil
	}

	var tickLower, tickUpper int32
	if amount0 != nil {
		// Asset0 sits entirely above the current price.
		tickLower = v4math.CeilToSpacing(currentTick, spacing)
		tickUpper = v4math.MaxUsableTick(spacing)
		if tickLower >= tickUpper {
			return false, nil
		}
	} else {
		// Asset1 sits entirely below the current price.
		tickLower = v4math.MinUsableTick(spacing)
		tickUpper = v4math.FloorToSpacing(currentTick, spacing)
		if tickUpper <= tickLower {
			return false, nil
		}
	}

	sqrtLower, err := v4math.SqrtPriceAtTick(tickLower)
	if err != nil {
		return false, nil
	}
	sqrtUpper, err := v4math.SqrtPriceAtTick(tickUpper)
	if err != nil {
		return false, nil
	}

	zero := big.NewInt(0)
	a0, a1 := amount0, amount1
	if a0 == nil {
		a0 = zero
	}
	if a1 == nil {
		a1 = zero
	}
	liquidity := v4math.LiquidityForAmounts(p.base.SqrtPriceX96, sqrtLower, sqrtUpper, a0, a1)
	if liquidity.Sign() == 0 {
		return false, nil
	}
	// The one-sided range shares every tick with the full-range position, so
	// the per-tick ceiling applies to their combined liquidity.
	totalLiquidity := new(big.Int).Set(liquidity)
	if p.base.Liquidity != nil {
		totalLiquidity.Add(totalLiquidity, p.base.Liquidity)
	}
	if totalLiquidity.Cmp(v4math.MaxLiquidityPerTick(spacing)) > 0 {
		return false, nil
	}

	if err := p.appendMint(tickLower, tickUpper, liquidity, a0, a1, p.base.Recipient); err != nil {
		return false, err
	}
	return true, nil
}

// Finish settles both owed assets and sweeps any residue to the recipient,
// completing the plan.
func (p *Planner) Finish(sweepRecipient common.Address) error {
	if p.state != planFullRange && p.state != planOneSided {
		return ErrPlanOutOfOrder
	}
	key := p.base.PoolKey
	settle, err := settlePairArgs.Pack(key.Currency0, key.Currency1)
	if err != nil {
		return err
	}
	take, err := takePairArgs.Pack(key.Currency0, key.Currency1, sweepRecipient)
	if err != nil {
		return err
	}
	p.ops = append(p.ops,
		PlanOp{Action: ActionSettlePair, Params: settle},
		PlanOp{Action: ActionTakePair, Params: take},
	)
	p.state = planComplete
	return nil
}

// Plan returns the completed plan.
func (p *Planner) Plan() (Plan, error) {
	if p.state != planComplete {
		return Plan{}, ErrPlanOutOfOrder
	}
	return Plan{Ops: p.ops}, nil
}
