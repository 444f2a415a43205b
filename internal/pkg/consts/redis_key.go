package consts

const (
	ChannelListKey    = "channel:list:active"
	ChannelDetailKey  = "channel:detail:"
	InvestRequestKey  = "invest:req:"
	SessionRevokedKey = "session:revoked:"
)

const (
	DistributionLock  = "distribution:lock"
	ReconcileLock     = "reconcile:lock"
	ChannelUpdateChan = "channel:inventory:updates"
)
