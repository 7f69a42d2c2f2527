// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schemas holds the rule-sets of the services the generator writes
// configuration for, together with a JSON Schema describing each output.
//
// Rule-sets:
//   - chain-switcher: the chain-switching daemon.
//   - user-chain-api: the user/chain lookup API server; every coin in
//     AvailableCoins must have a UserListAPI_<coin> entry.
//   - user-chain-api-lenient: the same server in multi-chain mode; coins
//     without an entry are left out, the "auto" chain is never looked up,
//     and the resulting map must cover one coin or every non-auto coin.
package schemas

import (
	"embed"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/pool-cfggen/internal/rules"
)

// Rule-set names.
const (
	ChainSwitcherName       = "chain-switcher"
	UserChainAPIName        = "user-chain-api"
	UserChainAPILenientName = "user-chain-api-lenient"
)

const (
	// autoChainName is the chain the API server resolves per user at
	// runtime; it never has a user list of its own.
	autoChainName = "auto"

	defaultChainSwitcherTable = "chain_switcher_record"
)

// ErrUnknownSchema is returned by [Lookup] for names not in the registry.
var ErrUnknownSchema = errors.New("unknown schema")

//go:embed jsonschema/*.json
var jsonSchemas embed.FS

// ChainSwitcher returns the rule-set of the chain-switching daemon.
func ChainSwitcher() rules.Schema {
	return rules.Schema{
		Name: ChainSwitcherName,
		Fields: []rules.Field{
			rules.Record("Kafka",
				rules.RequiredList("Brokers", "KafkaBrokers"),
				rules.RequiredString("ControllerTopic", "KafkaControllerTopic"),
				rules.RequiredString("ProcessorTopic", "KafkaProcessorTopic"),
			),
			rules.RequiredString("Algorithm", "Algorithm"),
			rules.RequiredString("ChainDispatchAPI", "ChainDispatchAPI"),
			rules.Int("SwitchIntervalSeconds", "SwitchIntervalSeconds", 60),
			rules.RequiredString("FailSafeChain", "FailSafeChain"),
			rules.Int("FailSafeSeconds", "FailSafeSeconds", 0).
				WithDefaultFrom("SwitchIntervalSeconds", 10),
			rules.JSON("ChainNameMap", "ChainNameMap").WithObject().WithStringValues(),
			rules.Record("MySQL",
				rules.RequiredString("ConnStr", "MySQLConnStr").WithSecret(),
				rules.OptionalString("Table", "MySQLTable", defaultChainSwitcherTable),
			),
		},
	}
}

// UserChainAPI returns the rule-set of the user/chain API server with a
// strict UserListAPI map.
func UserChainAPI() rules.Schema {
	return userChainAPI(UserChainAPIName,
		rules.DynamicMap("UserListAPI", "AvailableCoins", "UserListAPI_", true),
		"",
	)
}

// UserChainAPILenient returns the rule-set of the user/chain API server in
// multi-chain mode.
func UserChainAPILenient() rules.Schema {
	return userChainAPI(UserChainAPILenientName,
		rules.DynamicMap("UserListAPI", "AvailableCoins", "UserListAPI_", false).
			WithSkip(autoChainName).
			WithUniqueValues().
			WithOneOrAll(),
		"/",
	)
}

// userChainAPI assembles the user/chain API rule-set around the given
// UserListAPI rule. dirSuffix is appended to ZooKeeper watch directories.
func userChainAPI(name string, userListAPI rules.Field, dirSuffix string) rules.Schema {
	return rules.Schema{
		Name: name,
		Fields: []rules.Field{
			rules.RequiredList("AvailableCoins", "AvailableCoins"),
			userListAPI,
			rules.Int("IntervalSeconds", "IntervalSeconds", 10),
			rules.RequiredList("ZKBroker", "ZKBroker"),
			rules.RequiredString("ZKSwitcherWatchDir", "ZKSwitcherWatchDir").WithSuffix(dirSuffix),

			rules.Flag("EnableUserAutoReg", "EnableUserAutoReg"),
			rules.When("EnableUserAutoReg",
				rules.RequiredString("ZKAutoRegWatchDir", "ZKAutoRegWatchDir").WithSuffix(dirSuffix),
				rules.Record("UserAutoRegAPI",
					rules.Int("IntervalSeconds", "UserAutoRegAPI_IntervalSeconds", 10),
					rules.RequiredString("URL", "UserAutoRegAPI_URL"),
					rules.RequiredString("User", "UserAutoRegAPI_User"),
					rules.RequiredString("Password", "UserAutoRegAPI_Password").WithSecret(),
					rules.RequiredString("DefaultCoin", "UserAutoRegAPI_DefaultCoin").
						WithMemberOf("AvailableCoins"),
					rules.JSON("PostData", "UserAutoRegAPI_PostData").WithObject().WithStringValues(),
				),
			),

			rules.Flag("StratumServerCaseInsensitive", "StratumServerCaseInsensitive"),
			rules.When("StratumServerCaseInsensitive",
				rules.OptionalString("ZKUserCaseInsensitiveIndex", "ZKUserCaseInsensitiveIndex", ""),
			),

			rules.Flag("EnableAPIServer", "EnableAPIServer"),
			rules.When("EnableAPIServer",
				rules.RequiredString("ListenAddr", "ListenAddr"),
				rules.OptionalString("APIUser", "APIUser", ""),
				rules.OptionalString("APIPassword", "APIPassword", "").WithSecret(),
			),

			rules.Flag("EnableCronJob", "EnableCronJob"),
			rules.When("EnableCronJob",
				rules.Int("CronIntervalSeconds", "CronIntervalSeconds", 60),
				rules.RequiredString("UserCoinMapURL", "UserCoinMapURL"),
			),
		},
	}
}

type entry struct {
	schema     func() rules.Schema
	jsonSchema string
}

var registry = map[string]entry{
	ChainSwitcherName:       {schema: ChainSwitcher, jsonSchema: "jsonschema/chain-switcher.json"},
	UserChainAPIName:        {schema: UserChainAPI, jsonSchema: "jsonschema/user-chain-api.json"},
	UserChainAPILenientName: {schema: UserChainAPILenient, jsonSchema: "jsonschema/user-chain-api-lenient.json"},
}

// Lookup returns the rule-set registered under name.
func Lookup(name string) (rules.Schema, error) {
	e, ok := registry[name]
	if !ok {
		return rules.Schema{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownSchema, name, Names())
	}
	return e.schema(), nil
}

// JSONSchema returns the JSON Schema document describing the output of the
// rule-set registered under name.
func JSONSchema(name string) ([]byte, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSchema, name)
	}
	return jsonSchemas.ReadFile(e.jsonSchema)
}

// Names returns the registered rule-set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
