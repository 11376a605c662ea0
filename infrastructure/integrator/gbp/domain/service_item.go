package domain

// RawServiceItem é o item de serviço como veio da API, sem reshaping. O nome
// de exibição pode estar em pelo menos três formas aninhadas diferentes
// (structuredServiceItem.serviceTypeId, freeFormServiceItem.label.displayName,
// displayName genérico), então o item viaja como mapa opaco até o
// normalizador, que aplica as regras de extração em ordem de prioridade e
// preserva o original para depuração de drift de schema.
type RawServiceItem map[string]any
