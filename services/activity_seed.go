package services

import (
	"github.com/activi-backend/models"
)

func category(name string) *string {
	return &name
}

// defaultActivityTypes is the fixed catalog seeded at bootstrap. Content is
// the product's Spanish copy, kept verbatim.
func defaultActivityTypes() []models.ActivityType {
	return []models.ActivityType{
		{
			ID:            "pack",
			Name:          "activity_pack",
			Title:         "Pack de Actividades",
			Description:   "Genera múltiples actividades de forma automática",
			InfoTooltip:   "Genera múltiples actividades de forma automática. Selecciona qué tipos de actividades quieres crear y se generarán todas usando las imágenes del canvas.",
			IconName:      "auto_awesome",
			ColorValue:    0xFF6A1B9A,
			Order:         0,
			IsHighlighted: true,
			IsEnabled:     true,
			Category:      category("pack"),
		},
		{
			ID:          "shadow_matching",
			Name:        "shadow_matching",
			Title:       "Relacionar Sombras",
			Description: "Une cada imagen con su sombra",
			InfoTooltip: "Crea una actividad con imágenes y sombras en 3 columnas con puntos de unión. El alumno traza líneas entre los puntos para relacionar cada imagen con su sombra.",
			IconName:    "link",
			ColorValue:  0xFF1976D2,
			Order:       1,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "puzzle",
			Name:        "puzzle",
			Title:       "Puzle",
			Description: "Puzle de 4x4 para recortar",
			InfoTooltip: "Genera un puzle de 4x4 (16 piezas) con la imagen del canvas. Perfecto para imprimir, recortar y que el alumno lo monte.",
			IconName:    "extension",
			ColorValue:  0xFFF57C00,
			Order:       2,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "writing_practice",
			Name:        "writing_practice",
			Title:       "Práctica de Escritura",
			Description: "Imágenes con pauta para escribir",
			InfoTooltip: "Organiza las imágenes en filas y columnas con pauta debajo de cada una para que el alumno escriba el nombre.",
			IconName:    "edit_note",
			ColorValue:  0xFF388E3C,
			Order:       3,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "counting_practice",
			Name:        "counting_practice",
			Title:       "Práctica de Conteo",
			Description: "Contar elementos repetidos",
			InfoTooltip: "Crea ejercicios con cada imagen repetida un número aleatorio de veces en su caja, con espacio para escribir la cantidad.",
			IconName:    "calculate",
			ColorValue:  0xFF7B1FA2,
			Order:       4,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "phonological_awareness",
			Name:        "phonological_awareness",
			Title:       "Conciencia Fonológica",
			Description: "Separar palabras en sílabas",
			InfoTooltip: "Separa las palabras en sílabas. Muestra la imagen, las sílabas separadas y líneas en pauta escolar para que el alumno repase cada sílaba.",
			IconName:    "hearing",
			ColorValue:  0xFF6A1B9A,
			Order:       5,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "phonological_board",
			Name:        "phonological_board",
			Title:       "Tablero Fonológico (recortable)",
			Description: "Tablero con puzle y recortables",
			InfoTooltip: "Crea un tablero vertical con zona de puzle 2x2 y huecos para palabra, sílabas y letras, más otra hoja con las piezas y tarjetas recortables listas para imprimir.",
			IconName:    "view_column",
			ColorValue:  0xFFE64A19,
			Order:       6,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "series",
			Name:        "series",
			Title:       "Series",
			Description: "Continuar patrones ABAB",
			InfoTooltip: "Muestra una serie de dos elementos alternados (ABAB...) y deja espacios en blanco para que el alumno continúe el patrón.",
			IconName:    "auto_awesome",
			ColorValue:  0xFFC2185B,
			Order:       7,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "symmetry",
			Name:        "symmetry",
			Title:       "Simetrías",
			Description: "Encontrar objetos iguales al modelo",
			InfoTooltip: "Muestra un objeto modelo y una cuadrícula 5x5 con el mismo objeto en diferentes orientaciones (rotado, volteado). El alumno debe encontrar los iguales al modelo.",
			IconName:    "flip",
			ColorValue:  0xFF00796B,
			Order:       8,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "phrases",
			Name:        "phrases",
			Title:       "Frases",
			Description: "Frases con pictogramas",
			InfoTooltip: "Muestra una imagen grande arriba y debajo la frase convertida en pictogramas para que el alumno lea o reconstruya.",
			IconName:    "forum_outlined",
			ColorValue:  0xFF455A64,
			Order:       9,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "card",
			Name:        "card",
			Title:       "Tarjeta",
			Description: "Tarjeta con imagen y texto",
			InfoTooltip: "Genera una tarjeta con la imagen a la izquierda y texto (título + párrafo) a la derecha.",
			IconName:    "credit_card",
			ColorValue:  0xFFE64A19,
			Order:       10,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "syllable_vocabulary",
			Name:        "syllable_vocabulary",
			Title:       "Vocabulario por Sílaba",
			Description: "Palabras que empiezan con una sílaba",
			InfoTooltip: "Genera automáticamente una lista de palabras con pictogramas de ARASAAC que empiezan con la sílaba que elijas (pa, ma, sa, etc.). No requiere añadir imágenes previamente.",
			IconName:    "abc",
			ColorValue:  0xFF303F9F,
			Order:       11,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "semantic_field",
			Name:        "semantic_field",
			Title:       "Campo Semántico",
			Description: "Palabras relacionadas temáticamente",
			InfoTooltip: "Añade una imagen de ARASAAC con texto y genera automáticamente una cuadrícula 5x5 con palabras relacionadas del mismo campo semántico (animales, frutas, ropa, etc.).",
			IconName:    "category",
			ColorValue:  0xFFFFA000,
			Order:       12,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "instructions",
			Name:        "instructions",
			Title:       "Instrucciones (Rodea)",
			Description: "Rodear elementos según instrucciones",
			InfoTooltip: "Genera una actividad con instrucciones tipo \"Rodea 2 casas, 3 árboles\". Los objetos aparecen distribuidos aleatoriamente con algunos distractores.",
			IconName:    "radio_button_checked",
			ColorValue:  0xFFD32F2F,
			Order:       13,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "classification",
			Name:        "classification",
			Title:       "Clasificación",
			Description: "Clasificar objetos en categorías",
			InfoTooltip: "Crea una actividad de clasificación en 2 hojas: una con 2 cuadrados de categorías y otra con 10 objetos relacionados para recortar y clasificar. Requiere 2 imágenes de ARASAAC en el canvas.",
			IconName:    "dashboard",
			ColorValue:  0xFF0097A7,
			Order:       14,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "phonological_squares",
			Name:        "phonological_squares",
			Title:       "Cuadrados Fonológicos",
			Description: "Pintar cuadrados por cada letra",
			InfoTooltip: "Muestra las imágenes del canvas con un rectángulo de 10 cuadrados (2 filas x 5 columnas) debajo de cada una. El alumno pinta un cuadrado por cada letra de la palabra.",
			IconName:    "grid_4x4",
			ColorValue:  0xFF0288D1,
			Order:       15,
			IsNew:       true,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "crossword",
			Name:        "crossword",
			Title:       "Crucigrama",
			Description: "Crucigrama con las palabras",
			InfoTooltip: "Genera un crucigrama usando las palabras de las imágenes del canvas. Las imágenes sirven como pistas numeradas para completar el crucigrama.",
			IconName:    "apps",
			ColorValue:  0xFF5D4037,
			Order:       16,
			IsNew:       true,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "word_search",
			Name:        "word_search",
			Title:       "Sopa de Letras",
			Description: "Encontrar palabras escondidas",
			InfoTooltip: "Crea una sopa de letras donde el alumno debe encontrar las palabras de las imágenes del canvas escondidas en una cuadrícula de 15x15 letras.",
			IconName:    "search",
			ColorValue:  0xFF6A1B9A,
			Order:       17,
			IsNew:       true,
			IsEnabled:   true,
			Category:    category("individual"),
		},
		{
			ID:          "sentence_completion",
			Name:        "sentence_completion",
			Title:       "Completar Frases",
			Description: "Frases con espacios en blanco",
			InfoTooltip: "Genera frases simples con las imágenes del canvas. Cada página muestra un modelo de frase completa y debajo la misma frase con espacios en blanco para completar. Incluye una página con recortables.",
			IconName:    "edit_note",
			ColorValue:  0xFF00796B,
			Order:       18,
			IsNew:       true,
			IsEnabled:   true,
			Category:    category("individual"),
		},
	}
}
