package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"github.com/sirupsen/logrus"

	ethinfra "github.com/dwisetya/blockchain-api/internal/infrastructure/ethereum"
	"github.com/dwisetya/blockchain-api/pkg/ethunit"
)

var (
	// ErrWalletNotConfigured is returned by SendTransaction when no signing
	// key was loaded at startup. Checked before any RPC call is made.
	ErrWalletNotConfigured = errors.New("wallet is not configured")
	// ErrTxNotFound is returned when the node has no transaction for a hash.
	ErrTxNotFound = errors.New("transaction not found")
)

// ChainClient is the subset of the Ethereum JSON-RPC surface the service
// needs. *ethclient.Client satisfies it.
type ChainClient interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

var _ ChainClient = (*ethclient.Client)(nil)

// EthereumService translates chain client responses into API payloads. Every
// upstream failure is wrapped with a fixed per-operation context prefix, and
// all amounts cross the boundary as decimal strings.
type EthereumService struct {
	Client  ChainClient
	Wallet  *ethinfra.Wallet
	ChainID *big.Int
	Logger  *logrus.Logger

	// ConfirmTimeout bounds the receipt wait after submitting a transfer.
	ConfirmTimeout time.Duration
	// PollInterval is the receipt polling cadence.
	PollInterval time.Duration
}

func NewEthereumService(client ChainClient, wallet *ethinfra.Wallet, chainID int64, logger *logrus.Logger) *EthereumService {
	return &EthereumService{
		Client:         client,
		Wallet:         wallet,
		ChainID:        big.NewInt(chainID),
		Logger:         logger,
		ConfirmTimeout: 90 * time.Second,
		PollInterval:   2 * time.Second,
	}
}

type BalanceResult struct {
	Address  string `json:"address"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// GetBalance returns the address balance as a decimal ether string.
func (s *EthereumService) GetBalance(ctx context.Context, address string) (*BalanceResult, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("failed to get balance: invalid address %q", address)
	}
	wei, err := s.Client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &BalanceResult{
		Address:  address,
		Balance:  ethunit.FormatEther(wei),
		Currency: "ETH",
	}, nil
}

type SendResult struct {
	Hash     string `json:"hash"`
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// SendTransaction submits a signed value transfer and waits for it to be
// included in a block. Without a configured wallet it fails before touching
// the node.
func (s *EthereumService) SendTransaction(ctx context.Context, to, amount string) (*SendResult, error) {
	if s.Wallet == nil {
		return nil, ErrWalletNotConfigured
	}
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("transaction failed: invalid recipient address %q", to)
	}
	value, err := ethunit.ParseEther(amount)
	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	from := s.Wallet.Address()
	nonce, err := s.Client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}
	gasPrice, err := s.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	toAddr := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &toAddr,
		Value:    value,
		Gas:      params.TxGas,
		GasPrice: gasPrice,
	})
	signed, err := s.Wallet.SignTx(tx, s.ChainID)
	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}
	if err := s.Client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("hash", signed.Hash().Hex()).Info("transaction submitted, waiting for receipt")
	}
	if _, err := s.waitMined(ctx, signed.Hash()); err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return &SendResult{
		Hash:     signed.Hash().Hex(),
		From:     from.Hex(),
		To:       toAddr.Hex(),
		Amount:   amount,
		Currency: "ETH",
	}, nil
}

// waitMined polls for the receipt until the confirmation timeout. Transient
// lookup errors keep the poll alive; only the deadline gives up.
func (s *EthereumService) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.Client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, goethereum.NotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("hash", hash.Hex()).Debug("receipt lookup failed, retrying")
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("no receipt for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

type TransactionResult struct {
	Hash          string  `json:"hash"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	BlockNumber   *uint64 `json:"blockNumber"`
	Confirmations uint64  `json:"confirmations"`
}

// GetTransaction looks up a transaction by hash. A pending transaction has a
// null block number and zero confirmations; confirmation counting that fails
// midway degrades to zero instead of failing the lookup.
func (s *EthereumService) GetTransaction(ctx context.Context, hash string) (*TransactionResult, error) {
	tx, pending, err := s.Client.TransactionByHash(ctx, common.HexToHash(hash))
	if errors.Is(err, goethereum.NotFound) {
		return nil, ErrTxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	res := &TransactionResult{
		Hash:     tx.Hash().Hex(),
		Amount:   ethunit.FormatEther(tx.Value()),
		Currency: "ETH",
	}
	if from, err := types.Sender(types.LatestSignerForChainID(s.ChainID), tx); err == nil {
		res.From = from.Hex()
	}
	if tx.To() != nil {
		res.To = tx.To().Hex()
	}

	if !pending {
		receipt, err := s.Client.TransactionReceipt(ctx, tx.Hash())
		if err == nil && receipt != nil && receipt.BlockNumber != nil {
			mined := receipt.BlockNumber.Uint64()
			res.BlockNumber = &mined
			if head, err := s.Client.BlockNumber(ctx); err == nil && head >= mined {
				res.Confirmations = head - mined + 1
			}
		}
	}
	return res, nil
}

type BlockNumberResult struct {
	BlockNumber uint64 `json:"blockNumber"`
}

// GetBlockNumber returns the latest block height.
func (s *EthereumService) GetBlockNumber(ctx context.Context) (*BlockNumberResult, error) {
	n, err := s.Client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}
	return &BlockNumberResult{BlockNumber: n}, nil
}

type GasPriceResult struct {
	GasPrice             string  `json:"gasPrice"`
	MaxFeePerGas         *string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas"`
}

// GetGasPrice reports current fee data in gwei. The EIP-1559 fields are null
// on networks without a base fee.
func (s *EthereumService) GetGasPrice(ctx context.Context) (*GasPriceResult, error) {
	gasPrice, err := s.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	res := &GasPriceResult{GasPrice: ethunit.FormatGwei(gasPrice)}

	head, err := s.Client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	if head.BaseFee != nil {
		tip, err := s.Client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get gas price: %w", err)
		}
		// Same heuristic as ethers' FeeData: maxFee = 2*baseFee + tip.
		maxFee := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)
		maxFeeStr := ethunit.FormatGwei(maxFee)
		tipStr := ethunit.FormatGwei(tip)
		res.MaxFeePerGas = &maxFeeStr
		res.MaxPriorityFeePerGas = &tipStr
	}
	return res, nil
}
