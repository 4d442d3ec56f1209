package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_autoscaling_api.go ../refresher AutoScalingAPI
//counterfeiter:generate -o ./fake_refresher.go ../refresher Refresher
//counterfeiter:generate -o ./fake_operator.go ../operator Operator
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
