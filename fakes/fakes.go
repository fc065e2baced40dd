package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_metadata_fetcher.go ../metadata Fetcher
//counterfeiter:generate -o ./fake_metric_sampler.go ../monitoring Sampler
//counterfeiter:generate -o ./fake_publisher.go ../publisher Publisher
//counterfeiter:generate -o ./fake_poll_runner.go ../server PollRunner
