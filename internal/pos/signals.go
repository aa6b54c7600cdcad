package pos

// Terminal UI'ın ses/bildirim katmanı için sinyal kodları. Çalma işi
// tamamen UI'dadır; sunucu sadece hangi sinyalin uygun olduğunu söyler.
const (
	SignalBeepAdd     = "beep-add"
	SignalBeepRemove  = "beep-remove"
	SignalBeepSuccess = "beep-success"
	SignalBeepError   = "beep-error"
	SignalClick       = "click"
)
