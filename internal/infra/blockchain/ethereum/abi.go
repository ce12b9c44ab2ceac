package ethereum

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ManagerABI describes the escrow manager contract.
const ManagerABI = `[
	{"type":"constructor","inputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getEscrowIds","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getEscrow","stateMutability":"view",
	 "inputs":[{"name":"id","type":"uint256"}],
	 "outputs":[
		{"name":"depositor","type":"address"},
		{"name":"arbiter","type":"address"},
		{"name":"beneficiary","type":"address"},
		{"name":"value","type":"uint256"},
		{"name":"isApproved","type":"bool"}]},
	{"type":"function","name":"createEscrow","stateMutability":"payable",
	 "inputs":[{"name":"arbiter","type":"address"},{"name":"beneficiary","type":"address"}],
	 "outputs":[{"name":"id","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable",
	 "inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"Created","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"depositor","type":"address","indexed":true},
		{"name":"arbiter","type":"address","indexed":false},
		{"name":"beneficiary","type":"address","indexed":false},
		{"name":"value","type":"uint256","indexed":false}]},
	{"type":"event","name":"Approved","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true}]}
]`

const (
	methodEscrowIDs    = "getEscrowIds"
	methodEscrow       = "getEscrow"
	methodCreateEscrow = "createEscrow"
	methodApprove      = "approve"

	eventCreated  = "Created"
	eventApproved = "Approved"
)

var managerABI = mustParseABI(ManagerABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}

	return parsed
}

type createdLog struct {
	Id          *big.Int
	Depositor   common.Address
	Arbiter     common.Address
	Beneficiary common.Address
	Value       *big.Int
}

type approvedLog struct {
	Id *big.Int
}
