package fingerprint

// Fixed rendering tables. Their content and order are part of the fingerprint
// format shown to users; reordering or deduplicating entries (note the
// repeated "fa-coffee") would change existing fingerprints.
var colors = [14]string{
	"#000000", "#074750", "#009191", "#FF6CB6", "#FFB5DA", "#490092", "#006CDB",
	"#B66DFF", "#6DB5FE", "#B5DAFE", "#920000", "#924900", "#DB6D00", "#24FE23",
}

var icons = [46]string{
	"fa-hashtag",
	"fa-heart",
	"fa-hotel",
	"fa-university",
	"fa-plug",
	"fa-ambulance",
	"fa-bus",
	"fa-car",
	"fa-plane",
	"fa-rocket",
	"fa-ship",
	"fa-subway",
	"fa-truck",
	"fa-jpy",
	"fa-eur",
	"fa-btc",
	"fa-usd",
	"fa-gbp",
	"fa-archive",
	"fa-area-chart",
	"fa-bed",
	"fa-beer",
	"fa-bell",
	"fa-binoculars",
	"fa-birthday-cake",
	"fa-bomb",
	"fa-briefcase",
	"fa-bug",
	"fa-camera",
	"fa-cart-plus",
	"fa-certificate",
	"fa-coffee",
	"fa-cloud",
	"fa-coffee",
	"fa-comment",
	"fa-cube",
	"fa-cutlery",
	"fa-database",
	"fa-diamond",
	"fa-exclamation-circle",
	"fa-eye",
	"fa-flag",
	"fa-flask",
	"fa-futbol-o",
	"fa-gamepad",
	"fa-graduation-cap",
}
