package bridgecore

import (
	"math/big"
	"testing"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
	"github.com/ethereum/go-ethereum/common"
)

// fakeVault is an in-memory TokenVault double. Every call is recorded
// so tests can assert exactly which capability hook a transition
// invoked without needing a real chain adapter.
type fakeVault struct {
	balances map[codec.UniversalAddress]map[codec.UniversalAddress]*big.Int
	locked   map[codec.UniversalAddress]*big.Int
	fees     map[codec.UniversalAddress]*big.Int
	tips     map[codec.UniversalAddress]*big.Int
	minted   map[codec.UniversalAddress]*big.Int
	burned   map[codec.UniversalAddress]*big.Int
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		balances: make(map[codec.UniversalAddress]map[codec.UniversalAddress]*big.Int),
		locked:   make(map[codec.UniversalAddress]*big.Int),
		fees:     make(map[codec.UniversalAddress]*big.Int),
		tips:     make(map[codec.UniversalAddress]*big.Int),
		minted:   make(map[codec.UniversalAddress]*big.Int),
		burned:   make(map[codec.UniversalAddress]*big.Int),
	}
}

func (v *fakeVault) setBalance(owner, token codec.UniversalAddress, amount *big.Int) {
	if v.balances[owner] == nil {
		v.balances[owner] = make(map[codec.UniversalAddress]*big.Int)
	}
	v.balances[owner][token] = amount
}

func (v *fakeVault) LockFrom(owner, token codec.UniversalAddress, amount *big.Int) error {
	v.locked[token] = addOrZero(v.locked[token], amount)
	return nil
}

func (v *fakeVault) Unlock(token, recipient codec.UniversalAddress, amount *big.Int) error {
	v.locked[token] = addOrZero(v.locked[token], new(big.Int).Neg(amount))
	return nil
}

func (v *fakeVault) BurnFrom(owner, token codec.UniversalAddress, amount *big.Int) error {
	v.burned[token] = addOrZero(v.burned[token], amount)
	return nil
}

func (v *fakeVault) Mint(token, recipient codec.UniversalAddress, amount *big.Int) error {
	v.minted[token] = addOrZero(v.minted[token], amount)
	return nil
}

func (v *fakeVault) TransferFee(owner, token codec.UniversalAddress, amount *big.Int) error {
	v.fees[token] = addOrZero(v.fees[token], amount)
	return nil
}

func (v *fakeVault) BalanceOf(owner, token codec.UniversalAddress) (*big.Int, error) {
	if m, ok := v.balances[owner]; ok {
		if b, ok := m[token]; ok {
			return b, nil
		}
	}
	return big.NewInt(0), nil
}

func (v *fakeVault) PayTip(recipient codec.UniversalAddress, amount *big.Int) error {
	v.tips[recipient] = addOrZero(v.tips[recipient], amount)
	return nil
}

func addOrZero(x, y *big.Int) *big.Int {
	if x == nil {
		x = big.NewInt(0)
	}
	return new(big.Int).Add(x, y)
}

func evmAddr(hex string) codec.UniversalAddress {
	return codec.FromEVM(common.HexToAddress(hex))
}

// testBridgePair wires two Bridge instances representing the same
// token registered on both sides, the minimal two-chain deployment.
type testBridgePair struct {
	srcChain, destChain codec.ChainId
	src, dest           *Bridge
	vaultSrc, vaultDest *fakeVault
	localTokenSrc       codec.UniversalAddress
	localTokenDest      codec.UniversalAddress
	admin               codec.UniversalAddress
	operator            codec.UniversalAddress
	canceler            codec.UniversalAddress
	clock               *uint64
}

func newTestBridgePair(t *testing.T, tokenType registry.TokenType, srcDecimals, destDecimals uint8) *testBridgePair {
	t.Helper()

	localTokenSrc := evmAddr("0x1000000000000000000000000000000000000a")
	localTokenDest := evmAddr("0x2000000000000000000000000000000000000b")
	admin := evmAddr("0x00000000000000000000000000000000000009")
	operator := evmAddr("0x00000000000000000000000000000000000001")
	canceler := evmAddr("0x00000000000000000000000000000000000002")

	// Roles come first: chain registration is operator-only and token
	// configuration is admin-only, so both sides seed the same admin
	// and grant the operator before any registry mutation.
	srcRoles := registry.NewRoleRegistry(admin)
	destRoles := registry.NewRoleRegistry(admin)
	if err := srcRoles.GrantOperator(admin, operator); err != nil {
		t.Fatalf("GrantOperator src: %v", err)
	}
	if err := destRoles.GrantOperator(admin, operator); err != nil {
		t.Fatalf("GrantOperator dest: %v", err)
	}
	if err := destRoles.GrantCanceler(admin, canceler); err != nil {
		t.Fatalf("GrantCanceler dest: %v", err)
	}

	// Both registries assign IDs in the same registration order, so
	// "src-chain" and "dest-chain" resolve to the same ChainId on
	// both sides -- mirroring how a real deployment's two bridge
	// instances are independently configured with the same chain list.
	srcChains := registry.NewChainRegistry(1, srcRoles)
	destChains := registry.NewChainRegistry(2, destRoles)
	srcChain, err := srcChains.RegisterChain(operator, "src-chain")
	if err != nil {
		t.Fatalf("RegisterChain src: %v", err)
	}
	if _, err := destChains.RegisterChain(operator, "src-chain"); err != nil {
		t.Fatalf("RegisterChain src on dest side: %v", err)
	}
	if _, err := srcChains.RegisterChain(operator, "dest-chain"); err != nil {
		t.Fatalf("RegisterChain dest on src side: %v", err)
	}
	destChain, err := destChains.RegisterChain(operator, "dest-chain")
	if err != nil {
		t.Fatalf("RegisterChain dest: %v", err)
	}

	srcTokens := registry.NewTokenRegistry(srcRoles)
	if err := srcTokens.RegisterToken(admin, localTokenSrc, tokenType, srcDecimals); err != nil {
		t.Fatalf("RegisterToken src: %v", err)
	}
	if err := srcTokens.SetTokenDestinationWithDecimals(admin, localTokenSrc, destChain, localTokenDest, destDecimals); err != nil {
		t.Fatalf("SetTokenDestinationWithDecimals: %v", err)
	}

	destTokens := registry.NewTokenRegistry(destRoles)
	if err := destTokens.RegisterToken(admin, localTokenDest, tokenType, destDecimals); err != nil {
		t.Fatalf("RegisterToken dest: %v", err)
	}
	if err := destTokens.SetIncomingTokenMapping(admin, srcChain, localTokenDest, srcDecimals); err != nil {
		t.Fatalf("SetIncomingTokenMapping: %v", err)
	}

	vaultSrc := newFakeVault()
	vaultDest := newFakeVault()

	feeCfgSrc := NewFeeConfig(0, 0, codec.UniversalAddress{})
	feeCfgDest := NewFeeConfig(0, 0, codec.UniversalAddress{})

	src := NewBridge(srcChain, srcChains, srcTokens, srcRoles, feeCfgSrc, vaultSrc)
	dest := NewBridge(destChain, destChains, destTokens, destRoles, feeCfgDest, vaultDest)

	var now uint64 = 1_000
	src.SetClock(func() uint64 { return now })
	dest.SetClock(func() uint64 { return now })

	return &testBridgePair{
		srcChain: srcChain, destChain: destChain,
		src: src, dest: dest,
		vaultSrc: vaultSrc, vaultDest: vaultDest,
		localTokenSrc: localTokenSrc, localTokenDest: localTokenDest,
		admin: admin, operator: operator, canceler: canceler,
		clock: &now,
	}
}

func (p *testBridgePair) advance(seconds uint64) {
	*p.clock += seconds
}

// TestDepositWithdrawLockUnlockFullLifecycle walks a full round trip:
// deposit on the source chain, submit+approve+execute on the
// destination, using the transfer hash recomputed from the deposit's
// fields, and check that the unlock releases exactly the custody the
// destination vault held for it.
func TestDepositWithdrawLockUnlockFullLifecycle(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x00000000000000000000000000000000000aaa")

	amount := big.NewInt(1_000_000)
	dep, err := p.src.DepositNative(alice, p.localTokenSrc, amount, p.destChain, alice)
	if err != nil {
		t.Fatalf("DepositNative: %v", err)
	}
	if dep.NetAmount.Cmp(amount) != 0 {
		t.Fatalf("expected zero fee to leave amount unchanged, got %s", dep.NetAmount)
	}
	if dep.Nonce != 1 {
		t.Fatalf("expected first deposit nonce 1, got %d", dep.Nonce)
	}

	if _, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, dep.NetAmount, dep.Nonce, big.NewInt(0)); err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}

	destHash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain: p.srcChain, DestChain: p.destChain,
		SrcAccount: alice, DestAccount: alice,
		Token: p.localTokenDest, Amount: dep.NetAmount, Nonce: new(big.Int).SetUint64(dep.Nonce),
	})

	if _, err := p.dest.WithdrawExecuteUnlock(destHash); !bridgeerr.IsKind(err, bridgeerr.KindNotApproved) {
		t.Fatalf("expected NotApproved before approval, got %v", err)
	}

	if _, err := p.dest.WithdrawApprove(p.operator, destHash); err != nil {
		t.Fatalf("WithdrawApprove: %v", err)
	}

	if _, err := p.dest.WithdrawExecuteUnlock(destHash); !bridgeerr.IsKind(err, bridgeerr.KindCancelWindowActive) {
		t.Fatalf("expected CancelWindowActive immediately after approval, got %v", err)
	}

	p.advance(CancelWindowSeconds)

	// The deposit locked into the source chain's vault; the destination
	// vault holds its own custody of the destination token, seeded here
	// with exactly what the unlock releases.
	p.vaultDest.locked[p.localTokenDest] = new(big.Int).Set(dep.NetAmount)

	if _, err := p.dest.WithdrawExecuteUnlock(destHash); err != nil {
		t.Fatalf("WithdrawExecuteUnlock: %v", err)
	}
	if got := p.vaultDest.locked[p.localTokenDest]; got.Sign() != 0 {
		t.Fatalf("expected unlock to net custody back to zero, got %s", got)
	}

	if _, err := p.dest.WithdrawExecuteUnlock(destHash); !bridgeerr.IsKind(err, bridgeerr.KindAlreadyExecuted) {
		t.Fatalf("expected AlreadyExecuted on re-execute, got %v", err)
	}
}

// TestWithdrawCancelBlocksExecute: a canceler cancels within the
// window and execute stays blocked until uncancel.
func TestWithdrawCancelBlocksExecute(t *testing.T) {
	p := newTestBridgePair(t, registry.MintBurn, 18, 18)
	alice := evmAddr("0x00000000000000000000000000000000000bbb")

	dep, err := p.src.DepositERC20MintableBurn(alice, p.localTokenSrc, big.NewInt(500), p.destChain, alice)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	_, err = p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, dep.NetAmount, dep.Nonce, big.NewInt(0))
	if err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}
	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain: p.srcChain, DestChain: p.destChain,
		SrcAccount: alice, DestAccount: alice,
		Token: p.localTokenDest, Amount: dep.NetAmount, Nonce: new(big.Int).SetUint64(dep.Nonce),
	})

	if _, err := p.dest.WithdrawCancel(p.canceler, hash); !bridgeerr.IsKind(err, bridgeerr.KindNotApproved) {
		t.Fatalf("expected NotApproved before approval, got %v", err)
	}

	if _, err := p.dest.WithdrawApprove(p.operator, hash); err != nil {
		t.Fatalf("WithdrawApprove: %v", err)
	}
	if _, err := p.dest.WithdrawCancel(p.canceler, hash); err != nil {
		t.Fatalf("WithdrawCancel: %v", err)
	}

	p.advance(CancelWindowSeconds)
	if _, err := p.dest.WithdrawExecuteMint(hash); !bridgeerr.IsKind(err, bridgeerr.KindAlreadyCancelled) {
		t.Fatalf("expected AlreadyCancelled, got %v", err)
	}

	if _, err := p.dest.WithdrawUncancel(p.operator, hash); err != nil {
		t.Fatalf("WithdrawUncancel: %v", err)
	}
	// Uncancel restarts the window from the new now().
	if _, err := p.dest.WithdrawExecuteMint(hash); !bridgeerr.IsKind(err, bridgeerr.KindCancelWindowActive) {
		t.Fatalf("expected CancelWindowActive right after uncancel, got %v", err)
	}
	p.advance(CancelWindowSeconds)
	if _, err := p.dest.WithdrawExecuteMint(hash); err != nil {
		t.Fatalf("WithdrawExecuteMint after uncancel: %v", err)
	}
	if got := p.vaultDest.minted[p.localTokenDest]; got.Cmp(dep.NetAmount) != 0 {
		t.Fatalf("expected minted amount %s, got %s", dep.NetAmount, got)
	}
}

// TestWithdrawRoleEnforcement: only operators approve/uncancel, only
// cancelers cancel.
func TestWithdrawRoleEnforcement(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x00000000000000000000000000000000000ccc")
	intruder := evmAddr("0x00000000000000000000000000000000000ddd")

	dep, err := p.src.DepositNative(alice, p.localTokenSrc, big.NewInt(10), p.destChain, alice)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if _, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, dep.NetAmount, dep.Nonce, big.NewInt(0)); err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}
	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain: p.srcChain, DestChain: p.destChain,
		SrcAccount: alice, DestAccount: alice,
		Token: p.localTokenDest, Amount: dep.NetAmount, Nonce: new(big.Int).SetUint64(dep.Nonce),
	})

	if _, err := p.dest.WithdrawApprove(intruder, hash); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized approve by non-operator, got %v", err)
	}
	if _, err := p.dest.WithdrawApprove(p.operator, hash); err != nil {
		t.Fatalf("WithdrawApprove: %v", err)
	}
	if _, err := p.dest.WithdrawCancel(intruder, hash); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized cancel by non-canceler, got %v", err)
	}
}

// TestWithdrawSubmitIsIdempotentPerHash: resubmitting the same
// (account, token, amount, nonce) tuple fails AlreadySubmitted rather
// than creating a second pending record.
func TestWithdrawSubmitIsIdempotentPerHash(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x00000000000000000000000000000000000eee")

	if _, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, big.NewInt(42), 7, big.NewInt(0)); err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}
	_, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, big.NewInt(42), 7, big.NewInt(0))
	if !bridgeerr.IsKind(err, bridgeerr.KindAlreadySubmitted) {
		t.Fatalf("expected AlreadySubmitted, got %v", err)
	}
}

// TestDepositDecimalNormalizationOnExecute: a deposit made at 6
// source decimals is up-shifted to 18 destination decimals exactly at
// execute time, never at submit time.
func TestDepositDecimalNormalizationOnExecute(t *testing.T) {
	p := newTestBridgePair(t, registry.MintBurn, 6, 18)
	alice := evmAddr("0x00000000000000000000000000000000000f00")

	dep, err := p.src.DepositERC20MintableBurn(alice, p.localTokenSrc, big.NewInt(1_000_000), p.destChain, alice)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	pw, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, dep.NetAmount, dep.Nonce, big.NewInt(0))
	if err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}
	if pw.Amount.Cmp(dep.NetAmount) != 0 {
		t.Fatalf("expected pending amount to stay in source decimals pre-execute, got %s want %s", pw.Amount, dep.NetAmount)
	}

	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain: p.srcChain, DestChain: p.destChain,
		SrcAccount: alice, DestAccount: alice,
		Token: p.localTokenDest, Amount: dep.NetAmount, Nonce: new(big.Int).SetUint64(dep.Nonce),
	})
	if _, err := p.dest.WithdrawApprove(p.operator, hash); err != nil {
		t.Fatalf("WithdrawApprove: %v", err)
	}
	p.advance(CancelWindowSeconds)
	if _, err := p.dest.WithdrawExecuteMint(hash); err != nil {
		t.Fatalf("WithdrawExecuteMint: %v", err)
	}

	want := codec.Normalize(dep.NetAmount, 6, 18)
	if got := p.vaultDest.minted[p.localTokenDest]; got.Cmp(want) != 0 {
		t.Fatalf("expected minted amount normalized to %s, got %s", want, got)
	}
}

// TestDepositRejectsUnmappedToken: depositing a token with no
// destination mapping for the target chain fails TokenNotMapped and
// never touches the vault.
func TestDepositRejectsUnmappedToken(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f001")
	unmapped := evmAddr("0x0000000000000000000000000000000000f002")

	if err := p.src.tokens.RegisterToken(p.admin, unmapped, registry.LockUnlock, 18); err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}
	_, err := p.src.DepositNative(alice, unmapped, big.NewInt(1), p.destChain, alice)
	if !bridgeerr.IsKind(err, bridgeerr.KindTokenNotMapped) {
		t.Fatalf("expected TokenNotMapped, got %v", err)
	}
	if got := p.vaultSrc.locked[unmapped]; got != nil && got.Sign() != 0 {
		t.Fatalf("expected no vault movement for a rejected deposit")
	}
}

func TestDepositFeeIsDeductedAndForwarded(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f003")
	feeRecipient := evmAddr("0x0000000000000000000000000000000000f004")
	p.src.feeConfig.StandardBps = 50 // 0.5%
	p.src.feeConfig.FeeRecipient = feeRecipient

	dep, err := p.src.DepositNative(alice, p.localTokenSrc, big.NewInt(100_000), p.destChain, alice)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if dep.Fee.Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("expected fee 500, got %s", dep.Fee)
	}
	if dep.NetAmount.Cmp(big.NewInt(99_500)) != 0 {
		t.Fatalf("expected net amount 99500, got %s", dep.NetAmount)
	}
	if got := p.vaultSrc.fees[p.localTokenSrc]; got.Cmp(dep.Fee) != 0 {
		t.Fatalf("expected fee forwarded to vault, got %s", got)
	}
}

// TestCalculateFeePriority pins the fee pipeline's tier order: a
// per-account custom override wins over the balance-based discount,
// which wins over the standard rate.
func TestCalculateFeePriority(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f010")
	bob := evmAddr("0x0000000000000000000000000000000000f011")
	carol := evmAddr("0x0000000000000000000000000000000000f012")
	cl8y := evmAddr("0x0000000000000000000000000000000000f013")

	p.src.feeConfig.StandardBps = 50   // 0.5%
	p.src.feeConfig.DiscountedBps = 10 // 0.1%
	p.src.feeConfig.CL8YToken = &cl8y
	p.src.feeConfig.CL8YThreshold = big.NewInt(100)

	// Alice and bob both hold enough CL8Y for the discount tier; alice
	// additionally has a custom override, which must win.
	p.vaultSrc.setBalance(alice, cl8y, big.NewInt(200))
	p.vaultSrc.setBalance(bob, cl8y, big.NewInt(200))
	if err := p.src.SetCustomFee(alice, 25); err != nil {
		t.Fatalf("SetCustomFee: %v", err)
	}

	amount := big.NewInt(1_000_000)

	fee, err := p.src.CalculateFee(alice, amount)
	if err != nil {
		t.Fatalf("CalculateFee(alice): %v", err)
	}
	if fee.Cmp(big.NewInt(2_500)) != 0 {
		t.Fatalf("expected custom fee 2500, got %s", fee)
	}

	fee, err = p.src.CalculateFee(bob, amount)
	if err != nil {
		t.Fatalf("CalculateFee(bob): %v", err)
	}
	if fee.Cmp(big.NewInt(1_000)) != 0 {
		t.Fatalf("expected discounted fee 1000, got %s", fee)
	}

	fee, err = p.src.CalculateFee(carol, amount)
	if err != nil {
		t.Fatalf("CalculateFee(carol): %v", err)
	}
	if fee.Cmp(big.NewInt(5_000)) != 0 {
		t.Fatalf("expected standard fee 5000, got %s", fee)
	}
}

func TestSetCustomFeeRejectsBpsAboveMax(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f014")

	if err := p.src.SetCustomFee(alice, MaxFeeBps+1); !bridgeerr.IsKind(err, bridgeerr.KindInvalidAmount) {
		t.Fatalf("expected InvalidAmount for bps above the cap, got %v", err)
	}
}

func TestDepositRejectsZeroAndNegativeAmount(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f005")

	_, err := p.src.DepositNative(alice, p.localTokenSrc, big.NewInt(0), p.destChain, alice)
	if !bridgeerr.IsKind(err, bridgeerr.KindInvalidAmount) {
		t.Fatalf("expected InvalidAmount for zero, got %v", err)
	}
	_, err = p.src.DepositNative(alice, p.localTokenSrc, big.NewInt(-5), p.destChain, alice)
	if !bridgeerr.IsKind(err, bridgeerr.KindInvalidAmount) {
		t.Fatalf("expected InvalidAmount for negative, got %v", err)
	}
}

func TestWithdrawApproveForwardsOperatorGasTip(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f006")

	pw, err := p.dest.WithdrawSubmit(alice, p.srcChain, p.localTokenDest, big.NewInt(10), 1, big.NewInt(250))
	if err != nil {
		t.Fatalf("WithdrawSubmit: %v", err)
	}
	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain: p.srcChain, DestChain: p.destChain,
		SrcAccount: alice, DestAccount: alice,
		Token: p.localTokenDest, Amount: pw.Amount, Nonce: big.NewInt(1),
	})
	if _, err := p.dest.WithdrawApprove(p.operator, hash); err != nil {
		t.Fatalf("WithdrawApprove: %v", err)
	}
	if got := p.vaultDest.tips[p.operator]; got.Cmp(big.NewInt(250)) != 0 {
		t.Fatalf("expected operator tip 250, got %s", got)
	}
}

func TestDepositRecordsSingleEvent(t *testing.T) {
	p := newTestBridgePair(t, registry.LockUnlock, 18, 18)
	alice := evmAddr("0x0000000000000000000000000000000000f007")

	if _, err := p.src.DepositNative(alice, p.localTokenSrc, big.NewInt(10), p.destChain, alice); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	events := p.src.Events()
	if len(events) != 1 || events[0].Name != "Deposit" {
		t.Fatalf("expected a single Deposit event, got %+v", events)
	}
}
