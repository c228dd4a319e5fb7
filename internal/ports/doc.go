// Package ports holds the interfaces the dashboard's layers talk through.
//
// Handlers depend on the service interfaces (DiscoveryService,
// CompletionService, SettingsService) that internal/app implements. The app
// layer in turn depends on DiscoveryClient, ProgressDecoder and
// SettingsStore, which the outbound adapters satisfy. Mocks for all of them
// are generated into mocks/ by mockery.
package ports
