// Package i18n holds the static per-key-per-language string tables for the
// storefront. The key set and the locale set are both fixed; every key
// defines every supported language, which is enforced by a test rather than
// by fallback logic at lookup time.
package i18n

import "modernliving-backend/internal/models"

// Dictionary maps a string key to its translations.
type Dictionary map[string]map[models.Language]string

var dictionary = Dictionary{
	"nav_new": {
		models.LangES: "Novedades", models.LangEN: "New Arrivals", models.LangFR: "Nouveautés", models.LangDE: "Neuheiten", models.LangZH: "新品",
	},
	"nav_home": {
		models.LangES: "Hogar", models.LangEN: "Home & Living", models.LangFR: "Maison", models.LangDE: "Heim & Wohnen", models.LangZH: "家居",
	},
	"nav_tech": {
		models.LangES: "Tech", models.LangEN: "Tech", models.LangFR: "Tech", models.LangDE: "Technik", models.LangZH: "科技",
	},
	"nav_sale": {
		models.LangES: "Ofertas", models.LangEN: "Sale", models.LangFR: "Promos", models.LangDE: "Angebote", models.LangZH: "特价",
	},
	"nav_search": {
		models.LangES: "Buscar...", models.LangEN: "Search...", models.LangFR: "Chercher...", models.LangDE: "Suchen...", models.LangZH: "搜索...",
	},
	"cat_all": {
		models.LangES: "Todos", models.LangEN: "All", models.LangFR: "Tous", models.LangDE: "Alle", models.LangZH: "全部",
	},
	"cat_lighting": {
		models.LangES: "Iluminación", models.LangEN: "Lighting", models.LangFR: "Éclairage", models.LangDE: "Beleuchtung", models.LangZH: "照明",
	},
	"cat_audio": {
		models.LangES: "Audio", models.LangEN: "Audio", models.LangFR: "Audio", models.LangDE: "Audio", models.LangZH: "音频",
	},
	"cat_wearables": {
		models.LangES: "Wearables", models.LangEN: "Wearables", models.LangFR: "Wearables", models.LangDE: "Wearables", models.LangZH: "穿戴",
	},
	"hero_title": {
		models.LangES: "Redefine tu Estilo de Vida.", models.LangEN: "Redefine your Lifestyle.", models.LangFR: "Redéfinissez votre Style.", models.LangDE: "Definiere deinen Stil neu.", models.LangZH: "重新定义你的生活方式。",
	},
	"hero_subtitle": {
		models.LangES: "Lo mejor en tecnología y gadgets para tu hogar.", models.LangEN: "Curated tech and gadgets for your modern home.", models.LangFR: "Tech et gadgets pour votre maison moderne.", models.LangDE: "Technik für dein modernes Zuhause.", models.LangZH: "专为现代家居打造的科技产品。",
	},
	"shop_now": {
		models.LangES: "Comprar Ahora", models.LangEN: "Shop Now", models.LangFR: "Acheter Now", models.LangDE: "Jetzt Kaufen", models.LangZH: "立即购买",
	},
	"collections": {
		models.LangES: "Colecciones", models.LangEN: "Collections", models.LangFR: "Collections", models.LangDE: "Kollektionen", models.LangZH: "系列",
	},
	"footer_shop": {
		models.LangES: "Tienda", models.LangEN: "Shop", models.LangFR: "Boutique", models.LangDE: "Shop", models.LangZH: "商店",
	},
	"footer_support": {
		models.LangES: "Soporte", models.LangEN: "Support", models.LangFR: "Support", models.LangDE: "Support", models.LangZH: "支持",
	},
	"footer_company": {
		models.LangES: "Compañía", models.LangEN: "Company", models.LangFR: "Entreprise", models.LangDE: "Firma", models.LangZH: "公司",
	},
	"footer_best": {
		models.LangES: "Más Vendidos", models.LangEN: "Best Sellers", models.LangFR: "Meilleures Ventes", models.LangDE: "Bestseller", models.LangZH: "热销",
	},
	"footer_story": {
		models.LangES: "Nuestra Historia", models.LangEN: "Our Story", models.LangFR: "Notre Histoire", models.LangDE: "Geschichte", models.LangZH: "品牌故事",
	},
	"footer_eco": {
		models.LangES: "Sostenibilidad", models.LangEN: "Sustainability", models.LangFR: "Durabilité", models.LangDE: "Nachhaltigkeit", models.LangZH: "可持续性",
	},
	"footer_privacy": {
		models.LangES: "Privacidad", models.LangEN: "Privacy", models.LangFR: "Confidentialité", models.LangDE: "Datenschutz", models.LangZH: "隐私政策",
	},
	"footer_terms": {
		models.LangES: "Términos", models.LangEN: "Terms", models.LangFR: "Conditions", models.LangDE: "AGB", models.LangZH: "服务条款",
	},
	"footer_help": {
		models.LangES: "Centro de Ayuda", models.LangEN: "Help Center", models.LangFR: "Aide", models.LangDE: "Hilfe", models.LangZH: "帮助中心",
	},
	"back": {
		models.LangES: "Volver", models.LangEN: "Back", models.LangFR: "Retour", models.LangDE: "Zurück", models.LangZH: "返回",
	},
}

// T looks up one string. Unknown keys return the key itself so a missing
// entry is visible instead of blank.
func T(key string, lang models.Language) string {
	if entry, ok := dictionary[key]; ok {
		if s, ok := entry[lang]; ok {
			return s
		}
	}
	return key
}

// All returns every string for one locale, for clients that load the table
// up front.
func All(lang models.Language) map[string]string {
	out := make(map[string]string, len(dictionary))
	for key, entry := range dictionary {
		out[key] = entry[lang]
	}
	return out
}

// Keys returns every dictionary key. Used by tests to verify coverage.
func Keys() []string {
	out := make([]string, 0, len(dictionary))
	for key := range dictionary {
		out = append(out, key)
	}
	return out
}
