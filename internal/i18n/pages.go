package i18n

import "modernliving-backend/internal/models"

// PageContent is one informational page in one language.
type PageContent struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type pageEntry struct {
	title   map[models.Language]string
	content map[models.Language]string
}

var pages = map[string]pageEntry{
	"story": {
		title: map[models.Language]string{
			models.LangES: "Nuestra Historia", models.LangEN: "Our Story", models.LangFR: "Notre Histoire", models.LangDE: "Unsere Geschichte", models.LangZH: "我们的故事",
		},
		content: map[models.Language]string{
			models.LangES: "Fundada en 2020 en el corazón de Estocolmo, Modern Living nació con una misión simple: democratizar el diseño de alta gama y la tecnología de vanguardia. En 2026, nos hemos convertido en el referente global del hogar inteligente, fusionando la calidez del diseño escandinavo con la inteligencia artificial más avanzada. Creemos que tu espacio debe entenderte y adaptarse a ti, no al revés.",
			models.LangEN: "Founded in 2020 in the heart of Stockholm, Modern Living was born with a simple mission: to democratize high-end design and cutting-edge technology. By 2026, we have become the global benchmark for the smart home, merging the warmth of Scandinavian design with the most advanced artificial intelligence. We believe your space should understand and adapt to you, not the other way around.",
			models.LangFR: "Fondée en 2020 au cœur de Stockholm, Modern Living est née avec une mission simple : démocratiser le design haut de gamme et la technologie de pointe. En 2026, nous sommes devenus la référence mondiale de la maison intelligente, fusionnant la chaleur du design scandinave avec l'intelligence artificielle la plus avancée.",
			models.LangDE: "Modern Living wurde 2020 im Herzen von Stockholm mit einer einfachen Mission gegründet: High-End-Design und Spitzentechnologie zu demokratisieren. Bis 2026 sind wir zum globalen Maßstab für das Smart Home geworden und verbinden die Wärme skandinavischen Designs mit modernster künstlicher Intelligenz.",
			models.LangZH: "Modern Living 于 2020 年在斯德哥尔摩中心地带成立，其使命非常简单：让高端设计和尖端技术大众化。到 2026 年，我们已成为全球智能家居的标杆，将斯堪的纳维亚设计的温暖与最先进的人工智能相结合。",
		},
	},
	"sustainability": {
		title: map[models.Language]string{
			models.LangES: "Sostenibilidad 2026", models.LangEN: "Sustainability 2026", models.LangFR: "Durabilité 2026", models.LangDE: "Nachhaltigkeit 2026", models.LangZH: "2026 可持续发展",
		},
		content: map[models.Language]string{
			models.LangES: "Para 2026, Modern Living ha alcanzado la neutralidad de carbono total. Todos nuestros productos utilizan materiales 100% reciclados o biodegradables. Nuestro sistema de logística inteligente reduce las emisiones en un 60% mediante entregas optimizadas por IA. No solo vendemos tecnología, protegemos el planeta que la alberga.",
			models.LangEN: "By 2026, Modern Living has achieved full carbon neutrality. All our products use 100% recycled or biodegradable materials. Our smart logistics system reduces emissions by 60% through AI-optimized deliveries. We don't just sell technology; we protect the planet that houses it.",
			models.LangFR: "D'ici 2026, Modern Living aura atteint la neutralité carbone totale. Tous nos produits utilisent des matériaux 100 % recyclés ou biodégradables. Notre système logistique intelligent réduit les émissions de 60 % grâce à des livraisons optimisées par l'IA.",
			models.LangDE: "Bis 2026 hat Modern Living die vollständige CO2-Neutralität erreicht. Alle unsere Produkte bestehen zu 100 % aus recycelten oder biologisch abbaubaren Materialien. Unser intelligentes Logistiksystem reduziert Emissionen durch KI-optimierte Lieferungen um 60 %.",
			models.LangZH: "到 2026 年，Modern Living 已实现全面碳中和。我们的所有产品均使用 100% 回收或可生物降解的材料。我们的智能物流系统通过 AI 优化的送货方式将排放量减少了 60%。我们不仅销售技术，还保护承载它的地球。",
		},
	},
	"privacy": {
		title: map[models.Language]string{
			models.LangES: "Privacidad Digital", models.LangEN: "Digital Privacy", models.LangFR: "Confidentialité", models.LangDE: "Datenschutz", models.LangZH: "数字隐私",
		},
		content: map[models.Language]string{
			models.LangES: "Tus datos son tuyos. En el ecosistema de Modern Living de 2026, toda la información de tu hogar inteligente se procesa localmente mediante encriptación cuántica. Nunca vendemos tus datos a terceros. La transparencia no es una opción, es nuestro estándar.",
			models.LangEN: "Your data is yours. In the 2026 Modern Living ecosystem, all your smart home information is processed locally using quantum encryption. We never sell your data to third parties. Transparency is not an option; it is our standard.",
			models.LangFR: "Vos données vous appartiennent. Dans l'écosystème Modern Living de 2026, toutes les informations de votre maison intelligente sont traitées localement par cryptage quantique. Nous ne vendons jamais vos données à des tiers.",
			models.LangDE: "Deine Daten gehören dir. Im Modern Living-Ökosystem von 2026 werden alle Informationen zu deinem Smart Home lokal mit Quantenverschlüsselung verarbeitet. Wir verkaufen deine Daten niemals an Dritte.",
			models.LangZH: "您的数据归您所有。在 2026 年的 Modern Living 生态系统中，您所有的智能家居信息都通过量子加密在本地进行处理。我们绝不会将您的数据出售给第三方。透明度不是一种选择，而是我们的标准。",
		},
	},
	"terms": {
		title: map[models.Language]string{
			models.LangES: "Términos y Condiciones", models.LangEN: "Terms & Conditions", models.LangFR: "Conditions Générales", models.LangDE: "AGB", models.LangZH: "条款与条件",
		},
		content: map[models.Language]string{
			models.LangES: "Al utilizar los servicios de Modern Living, aceptas nuestra Garantía de Calidad 2026. Todos los dispositivos incluyen actualizaciones de software de por vida y soporte técnico IA 24/7. Las devoluciones son automáticas y gratuitas durante los primeros 60 días si el producto no supera tus expectativas de diseño.",
			models.LangEN: "By using Modern Living services, you agree to our 2026 Quality Guarantee. All devices include lifetime software updates and 24/7 AI technical support. Returns are automatic and free for the first 60 days if the product does not exceed your design expectations.",
			models.LangFR: "En utilisant les services Modern Living, vous acceptez notre garantie de qualité 2026. Tous les appareils incluent des mises à jour logicielles à vie et un support technique IA 24/7. Les retours sont automatiques et gratuits pendant les 60 premiers jours.",
			models.LangDE: "Durch die Nutzung der Modern Living-Dienste stimmst du unserer Qualitätsgarantie 2026 zu. Alle Geräte verfügen über lebenslange Software-Updates und technischen KI-Support rund um die Uhr. Rücksendungen erfolgen in den ersten 60 Tagen automatisch und kostenlos.",
			models.LangZH: "通过使用 Modern Living 服务，您即表示同意我们的 2026 质量保证。所有设备均包含终身软件更新和 24/7 AI 技术支持。如果产品未超出您的设计预期，前 60 天内可自动免费退货。",
		},
	},
	"support": {
		title: map[models.Language]string{
			models.LangES: "Centro de Ayuda AI", models.LangEN: "AI Help Center", models.LangFR: "Centre d'aide IA", models.LangDE: "KI-Hilfezentrum", models.LangZH: "AI 帮助中心",
		},
		content: map[models.Language]string{
			models.LangES: "¿Necesitas ayuda? Nuestro asistente Smart Concierge está disponible en la esquina inferior derecha para resolver cualquier duda técnica de inmediato. También puedes contactarnos por holograma o correo electrónico. Tiempo de respuesta promedio: 2.5 segundos.",
			models.LangEN: "Need help? Our Smart Concierge assistant is available in the bottom right corner to resolve any technical questions immediately. You can also contact us via hologram or email. Average response time: 2.5 seconds.",
			models.LangFR: "Besoin d'aide ? Notre assistant Smart Concierge est disponible dans le coin inférieur droit pour répondre immédiatement à toutes vos questions techniques. Vous pouvez également nous contacter par hologramme ou par e-mail.",
			models.LangDE: "Benötigst du Hilfe? Unser Smart Concierge-Assistent steht dir in der unteren rechten Ecke zur Verfügung, um technische Fragen sofort zu klären. Du kannst uns auch per Hologramm oder E-Mail kontaktieren.",
			models.LangZH: "需要帮助吗？我们的智能礼宾助手位于右下角，可立即解决任何技术问题。您也可以通过全息图或电子邮件与我们联系。平均响应时间：2.5 秒。",
		},
	},
}

// Page returns one informational page in the requested language.
func Page(slug string, lang models.Language) (PageContent, bool) {
	entry, ok := pages[slug]
	if !ok {
		return PageContent{}, false
	}
	return PageContent{
		Slug:    slug,
		Title:   entry.title[lang],
		Content: entry.content[lang],
	}, true
}

// PageSlugs lists the informational page identifiers.
func PageSlugs() []string {
	out := make([]string, 0, len(pages))
	for slug := range pages {
		out = append(out, slug)
	}
	return out
}
