package container

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dwisetya/blockchain-api/config"
	ethinfra "github.com/dwisetya/blockchain-api/internal/infrastructure/ethereum"
	"github.com/dwisetya/blockchain-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The router auto-wires modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	ethClient   *ethclient.Client
	wallet      *ethinfra.Wallet
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetJWT(m *helpers.JWTManager)      { jwtManager = m }
func GetJWT() *helpers.JWTManager       { return jwtManager }
func SetEthClient(c *ethclient.Client)  { ethClient = c }
func GetEthClient() *ethclient.Client   { return ethClient }
func SetWallet(w *ethinfra.Wallet)      { wallet = w }
func GetWallet() *ethinfra.Wallet       { return wallet }
