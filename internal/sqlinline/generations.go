package sqlinline

const QInsertGeneration = `--sql d8c6f492-72fe-4dcf-b495-4bbd228e5df1
insert into generations(
  id,
  user_id,
  prompt,
  settings,
  status,
  created_at,
  updated_at
) values (
  gen_random_uuid(),
  $1::text,
  $2::text,
  $3::jsonb,
  'processing',
  now(),
  now()
) returning id, created_at, updated_at;
`

const QSelectGenerationForUser = `--sql 66122e92-e0c5-4298-a8ef-dcba3d81a133
select id, user_id, prompt, settings, status, error_message, created_at, updated_at
from generations
where id = $1::uuid and user_id = $2::text
limit 1;
`

const QListGenerationsByUser = `--sql 51e31e50-b424-408f-a0fc-e938a3e41545
select id, user_id, prompt, settings, status, error_message, created_at, updated_at
from generations
where user_id = $1::text
order by created_at desc
limit $2::int offset $3::int;
`

const QUpdateGenerationStatus = `--sql e551fb49-b6b4-416e-833d-d6e8bd8d446d
update generations
set status = $2::text,
    error_message = nullif($3::text, ''),
    updated_at = now()
where id = $1::uuid;
`

// Conditional transition completed -> processing. Zero affected rows means the
// generation is not refinable right now (missing, wrong owner, or mid-flight).
const QBeginRefinement = `--sql 7d6172cd-3b5b-4a52-b5b2-d270fb1acb6b
update generations
set status = 'processing', updated_at = now()
where id = $1::uuid and user_id = $2::text and status = 'completed';
`

const QCompleteRefinement = `--sql 6ee5397c-fd91-4c35-93a9-c67b3ff6a5be
update generations
set status = 'completed',
    prompt = $2::text,
    error_message = null,
    updated_at = now()
where id = $1::uuid;
`

const QDeleteGenerationForUser = `--sql 56491b3e-f28d-48ee-bc14-5b96b867b519
delete from generations
where id = $1::uuid and user_id = $2::text;
`

const QReapStaleGenerations = `--sql bd4a283a-8635-4a94-8c81-c55eec2fe23b
update generations
set status = 'failed',
    error_message = $2::text,
    updated_at = now()
where status = 'processing'
  and updated_at < now() - $1::interval
returning id;
`
