// Package config provides configuration loading for the credvault CLI.
//
// Values are resolved in this order, later sources overriding earlier ones:
//
//  1. Defaults (LoadDefaults)
//  2. JSON file named by -c/-config or $CREDVAULT_CONFIG
//  3. CREDVAULT_CLI_* environment variables
//  4. Command-line flags (-a, -t)
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s"
//	}
package config
